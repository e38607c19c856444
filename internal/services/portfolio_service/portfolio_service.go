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

	"github.com/google/uuid"
)

type PortfolioService struct {
	log  *slog.Logger
	repo repository.PortfolioRepository
}

func NewPortfolioService(log *slog.Logger, repo repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{log: log, repo: repo}
}

// GetAll returns every section ordered by rank, items ordered by rank within
// their section.
func (s *PortfolioService) GetAll(ctx context.Context) ([]models.PortfolioSection, error) {
	const op = "portfolio_service.GetAll"

	sections, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list sections", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sections, nil
}

func (s *PortfolioService) GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioSection, error) {
	const op = "portfolio_service.GetByID"

	section, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrSectionNotFound) {
			return nil, nil
		}
		s.log.Error("failed to get section", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return section, nil
}

// UpsertSection persists the patch and returns it merged with the generated
// id. The row is deliberately not re-read: only the id is authoritative in
// the returned value, server-side defaults stay invisible until the next
// full fetch.
func (s *PortfolioService) UpsertSection(ctx context.Context, patch models.SectionPatch) (models.PortfolioSection, error) {
	const op = "portfolio_service.UpsertSection"
	log := s.log.With(slog.String("op", op))

	id, err := s.repo.UpsertSection(ctx, patch)
	if err != nil {
		log.Error("failed to save section", sl.Err(err))
		return models.PortfolioSection{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("section saved", slog.String("section_id", id.String()))
	return patch.Merged(id), nil
}

func (s *PortfolioService) UpsertInventory(ctx context.Context, inventory models.InventoryItem) error {
	const op = "portfolio_service.UpsertInventory"

	if err := s.repo.UpsertInventory(ctx, inventory); err != nil {
		s.log.Error("failed to save inventory", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpsertItem round-trips through storage: the returned item is the persisted
// row, including a generated id and normalized defaults.
func (s *PortfolioService) UpsertItem(ctx context.Context, item models.SectionItem) (models.SectionItem, error) {
	const op = "portfolio_service.UpsertItem"
	log := s.log.With(slog.String("op", op))

	saved, err := s.repo.UpsertItem(ctx, item)
	if err != nil {
		log.Error("failed to save item", sl.Err(err))
		return models.SectionItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item saved", slog.String("item_id", saved.ID.String()))
	return saved, nil
}

// DeleteItem removes the row only. Cleaning up the item's image is the
// caller's job: it already knows the URL, and fetching the row here just to
// learn it would add a round trip.
func (s *PortfolioService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	const op = "portfolio_service.DeleteItem"

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		s.log.Error("failed to delete item", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteSection removes the section row; items and inventory cascade at the
// storage layer. Cover-image cleanup is the caller's job, as with DeleteItem.
func (s *PortfolioService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "portfolio_service.DeleteSection"

	if err := s.repo.DeleteSection(ctx, id); err != nil {
		s.log.Error("failed to delete section", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
