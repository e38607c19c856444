package models

import "github.com/google/uuid"

// PortfolioSection is a collection of works. A section owns either itemized
// inventory (Items) or a single aggregate InventoryItem; the legacy aggregate
// path is kept for backward compatibility.
type PortfolioSection struct {
	ID          uuid.UUID      `json:"id"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	ImgURL      *string        `json:"imgUrl"`
	OrderRank   int            `json:"orderRank"`
	Items       []SectionItem  `json:"items"`
	Inventory   *InventoryItem `json:"inventory"`
}

type SectionItem struct {
	ID           uuid.UUID `json:"id"`
	SectionID    uuid.UUID `json:"sectionId"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
	Price        float64   `json:"price"`
	StockQty     int       `json:"stockQty"`
	StripeLink   *string   `json:"stripeLink"`
	IsSaleActive bool      `json:"isSaleActive"`
	OrderRank    int       `json:"orderRank"`
}

// InventoryItem is the legacy one-per-section sale record, superseded by the
// per-item sale fields on SectionItem.
type InventoryItem struct {
	SectionID    uuid.UUID `json:"sectionId"`
	StockQty     int       `json:"stockQty"`
	Price        *float64  `json:"price"`
	StripeLink   *string   `json:"stripeLink"`
	IsSaleActive bool      `json:"isSaleActive"`
}

// SectionPatch carries a partial section upsert; a zero ID means insert.
type SectionPatch struct {
	ID          uuid.UUID     `json:"id,omitempty"`
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	ImgURL      Field[string] `json:"imgUrl"`
	OrderRank   Field[int]    `json:"orderRank"`
}

// Merged returns the patch as a domain section carrying the given id. Only the
// id is authoritative; unset fields keep their zero values because the section
// upsert does not re-read the row.
func (p SectionPatch) Merged(id uuid.UUID) PortfolioSection {
	return PortfolioSection{
		ID:          id,
		Title:       p.Title.Ptr(),
		Description: p.Description.Ptr(),
		ImgURL:      p.ImgURL.Ptr(),
		OrderRank:   p.OrderRank.Value,
	}
}
