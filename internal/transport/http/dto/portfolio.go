package dto

import "artfolio/internal/domain/models"

// SaveSectionRequest carries a section patch and, optionally, the legacy
// aggregate inventory to attach to the saved section.
type SaveSectionRequest struct {
	Section   models.SectionPatch   `json:"section"`
	Inventory *models.InventoryItem `json:"inventory,omitempty"`
}
