package services

import (
	"context"
	"fmt"
	"log/slog"

	"artfolio/internal/domain/models"
	"artfolio/internal/lib/logger/sl"
	"artfolio/internal/repository"

	"github.com/google/uuid"
)

type NewsService struct {
	log  *slog.Logger
	repo repository.NewsRepository
}

func NewNewsService(log *slog.Logger, repo repository.NewsRepository) *NewsService {
	return &NewsService{log: log, repo: repo}
}

// GetAll returns posts newest first. Category and publication defaults are
// filled at the mapping layer on read, not here.
func (s *NewsService) GetAll(ctx context.Context) ([]models.NewsPost, error) {
	const op = "news_service.GetAll"

	posts, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list posts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return posts, nil
}

func (s *NewsService) Upsert(ctx context.Context, patch models.NewsPatch) error {
	const op = "news_service.Upsert"
	log := s.log.With(slog.String("op", op))

	if err := s.repo.Upsert(ctx, patch); err != nil {
		log.Error("failed to save post", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("post saved", slog.String("title", patch.Title))
	return nil
}

// Delete removes the row only; image cleanup is orchestrated by the caller
// before this call.
func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "news_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete post", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
