package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type AboutRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAboutRepository(db *pgxpool.Pool) *AboutRepo {
	return &AboutRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AboutRepo) Get(ctx context.Context) (*models.AboutInfo, error) {
	const op = "repository.about_repository.Get"

	query, args, err := r.sb.Select("id", "description", "portrait_url").
		From("about_info").
		Where(sq.Eq{"id": models.AboutID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var info models.AboutInfo
	err = r.db.QueryRow(ctx, query, args...).Scan(&info.ID, &info.Description, &info.PortraitURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAboutNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &info, nil
}

func (r *AboutRepo) Upsert(ctx context.Context, patch models.AboutPatch) error {
	const op = "repository.about_repository.Upsert"

	cols := []string{"id"}
	vals := []interface{}{patch.ID}
	var updates []string

	if patch.Description.Set {
		cols = append(cols, "description")
		vals = append(vals, patch.Description.Ptr())
		updates = append(updates, "description = EXCLUDED.description")
	}
	if patch.PortraitURL.Set {
		cols = append(cols, "portrait_url")
		vals = append(vals, patch.PortraitURL.Ptr())
		updates = append(updates, "portrait_url = EXCLUDED.portrait_url")
	}

	suffix := "ON CONFLICT (id) DO NOTHING"
	if len(updates) > 0 {
		suffix = "ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ")
	}

	query, args, err := r.sb.Insert("about_info").
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
