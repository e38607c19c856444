package cloudinary

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config carries the account credentials. They are injected here at
// construction time instead of being read from process-global state.
type Config struct {
	CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `yaml:"api_key" env:"CLOUDINARY_API_KEY"`
	APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
}

// Storage talks to the Cloudinary API for asset removal.
type Storage struct {
	cld *cloudinary.Cloudinary
}

func New(cfg Config) (*Storage, error) {
	const op = "storage.cloudinary.New"

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{cld: cld}, nil
}

// Destroy removes the asset with the given public ID. It reports true only on
// a confirmed remote deletion; "not found" comes back as false without error.
func (s *Storage) Destroy(ctx context.Context, publicID string) (bool, error) {
	const op = "storage.cloudinary.Destroy"

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if res.Error.Message != "" {
		return false, fmt.Errorf("%s: %s", op, res.Error.Message)
	}

	return res.Result == "ok", nil
}
