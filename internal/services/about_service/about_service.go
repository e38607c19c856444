package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
	"artfolio/internal/storage"
)

type AboutService struct {
	log  *slog.Logger
	repo repository.AboutRepository
}

func NewAboutService(log *slog.Logger, repo repository.AboutRepository) *AboutService {
	return &AboutService{log: log, repo: repo}
}

// Get returns the about singleton, or nil when it has not been created yet.
func (s *AboutService) Get(ctx context.Context) (*models.AboutInfo, error) {
	const op = "about_service.Get"
	log := s.log.With(slog.String("op", op))

	info, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAboutNotFound) {
			return nil, nil
		}
		log.Error("failed to get about info", sl.Err(err))
		return nil, nil
	}

	return info, nil
}

// Upsert writes the about singleton, coercing the fixed id when the caller
// left it unset.
func (s *AboutService) Upsert(ctx context.Context, patch models.AboutPatch) error {
	const op = "about_service.Upsert"
	log := s.log.With(slog.String("op", op))

	if patch.ID == 0 {
		patch.ID = models.AboutID
	}

	if err := s.repo.Upsert(ctx, patch); err != nil {
		log.Error("failed to save about info", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("about info saved")
	return nil
}
