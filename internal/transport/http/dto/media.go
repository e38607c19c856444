package dto

type DeleteImageRequest struct {
	PublicID string `json:"public_id" validate:"required"`
}
