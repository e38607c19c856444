package models

// AboutID is the fixed id of the single about_info row.
const AboutID = 1

type AboutInfo struct {
	ID          int     `json:"id"`
	Description *string `json:"description"`
	PortraitURL *string `json:"portraitUrl"`
}

// AboutPatch carries a partial update of the about singleton. An unset id is
// coerced to AboutID by the service.
type AboutPatch struct {
	ID          int           `json:"id,omitempty"`
	Description Field[string] `json:"description"`
	PortraitURL Field[string] `json:"portraitUrl"`
}
