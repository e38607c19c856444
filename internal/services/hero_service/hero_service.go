package services

import (
	"context"
	"fmt"
	"log/slog"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"
)

type HeroService struct {
	log  *slog.Logger
	repo repository.HeroRepository
}

func NewHeroService(log *slog.Logger, repo repository.HeroRepository) *HeroService {
	return &HeroService{log: log, repo: repo}
}

// GetSettings never fails: any storage problem, including a missing row,
// degrades to the hard-coded default banner so the landing page always
// renders.
func (s *HeroService) GetSettings(ctx context.Context) models.HeroSettings {
	const op = "hero_service.GetSettings"
	log := s.log.With(slog.String("op", op))

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		log.Warn("falling back to default hero settings", sl.Err(err))
		return models.DefaultHeroSettings()
	}

	return settings
}

// UpdateSettings coerces the singleton id and, unlike GetSettings, is allowed
// to fail loudly.
func (s *HeroService) UpdateSettings(ctx context.Context, patch models.HeroPatch) (models.HeroSettings, error) {
	const op = "hero_service.UpdateSettings"
	log := s.log.With(slog.String("op", op))

	patch.ID = models.HeroID

	settings, err := s.repo.UpdateSettings(ctx, patch)
	if err != nil {
		log.Error("failed to update hero settings", sl.Err(err))
		return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("hero settings updated")
	return settings, nil
}
