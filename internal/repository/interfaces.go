package repository

import (
	"context"

	"artfolio/internal/domain/models"

	"github.com/google/uuid"
)

type AboutRepository interface {
	Get(ctx context.Context) (*models.AboutInfo, error)
	Upsert(ctx context.Context, patch models.AboutPatch) error
}

type HeroRepository interface {
	GetSettings(ctx context.Context) (models.HeroSettings, error)
	UpdateSettings(ctx context.Context, patch models.HeroPatch) (models.HeroSettings, error)
}

type PortfolioRepository interface {
	GetAll(ctx context.Context) ([]models.PortfolioSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioSection, error)
	UpsertSection(ctx context.Context, patch models.SectionPatch) (uuid.UUID, error)
	UpsertInventory(ctx context.Context, inventory models.InventoryItem) error
	UpsertItem(ctx context.Context, item models.SectionItem) (models.SectionItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	DeleteSection(ctx context.Context, id uuid.UUID) error
}

type NewsRepository interface {
	GetAll(ctx context.Context) ([]models.NewsPost, error)
	Upsert(ctx context.Context, patch models.NewsPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
