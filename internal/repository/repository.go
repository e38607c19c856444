package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db        *pgxpool.Pool
	About     AboutRepository
	Hero      HeroRepository
	Portfolio PortfolioRepository
	News      NewsRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		db:        db,
		About:     NewAboutRepository(db),
		Hero:      NewHeroRepository(db),
		Portfolio: NewPortfolioRepository(db),
		News:      NewNewsRepository(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
