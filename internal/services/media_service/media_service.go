package services

import (
	"context"
	"log/slog"

	cldurl "artfolio/internal/lib/cloudinary"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/metrics"
)

// ImageStorage is the remote image host boundary. Destroy reports true only
// on a confirmed remote deletion.
type ImageStorage interface {
	Destroy(ctx context.Context, publicID string) (bool, error)
}

// MediaService performs best-effort cleanup of remote image assets. Failures
// are logged and counted, never propagated: a leaked image costs storage
// quota, not data integrity, and must not block a content deletion.
type MediaService struct {
	log     *slog.Logger
	storage ImageStorage
}

func NewMediaService(log *slog.Logger, storage ImageStorage) *MediaService {
	return &MediaService{log: log, storage: storage}
}

func (s *MediaService) DeleteImage(ctx context.Context, publicID string) bool {
	const op = "media_service.DeleteImage"
	log := s.log.With(slog.String("op", op), slog.String("public_id", publicID))

	if publicID == "" {
		return false
	}

	ok, err := s.storage.Destroy(ctx, publicID)
	if err != nil {
		metrics.ImageDeletionsTotal.WithLabelValues("failed").Inc()
		log.Warn("image deletion failed", sl.Err(err))
		return false
	}
	if !ok {
		metrics.ImageDeletionsTotal.WithLabelValues("failed").Inc()
		log.Warn("image deletion not confirmed by remote")
		return false
	}

	metrics.ImageDeletionsTotal.WithLabelValues("ok").Inc()
	log.Info("image deleted")
	return true
}

// DeleteImageByURL resolves the public ID out of a delivery URL and deletes
// the asset. An unresolvable URL is a no-op returning false, without touching
// the network.
func (s *MediaService) DeleteImageByURL(ctx context.Context, url string) bool {
	publicID := cldurl.PublicIDFromURL(url)
	if publicID == "" {
		metrics.ImageDeletionsTotal.WithLabelValues("skipped").Inc()
		return false
	}

	return s.DeleteImage(ctx, publicID)
}
