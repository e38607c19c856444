package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type HeroRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewHeroRepository(db *pgxpool.Pool) *HeroRepo {
	return &HeroRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const heroColumns = "id, bg_image_url, title, dim_intensity, social_links, social_urls"

func (r *HeroRepo) GetSettings(ctx context.Context) (models.HeroSettings, error) {
	const op = "repository.hero_repository.GetSettings"

	query, args, err := r.sb.Select(strings.Split(heroColumns, ", ")...).
		From("hero_settings").
		Where(sq.Eq{"id": models.HeroID}).
		ToSql()
	if err != nil {
		return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	settings, err := scanHeroRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.HeroSettings{}, fmt.Errorf("%s: %w", op, storage.ErrHeroNotFound)
		}
		return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (r *HeroRepo) UpdateSettings(ctx context.Context, patch models.HeroPatch) (models.HeroSettings, error) {
	const op = "repository.hero_repository.UpdateSettings"

	cols := []string{"id"}
	vals := []interface{}{patch.ID}
	var updates []string

	if patch.BgImageURL.Set {
		cols = append(cols, "bg_image_url")
		vals = append(vals, patch.BgImageURL.Ptr())
		updates = append(updates, "bg_image_url = EXCLUDED.bg_image_url")
	}
	if patch.Title.Set {
		cols = append(cols, "title")
		vals = append(vals, patch.Title.Ptr())
		updates = append(updates, "title = EXCLUDED.title")
	}
	if patch.DimIntensity.Set {
		cols = append(cols, "dim_intensity")
		vals = append(vals, patch.DimIntensity.Ptr())
		updates = append(updates, "dim_intensity = EXCLUDED.dim_intensity")
	}
	if patch.SocialLinks != nil {
		b, err := json.Marshal(patch.SocialLinks)
		if err != nil {
			return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
		}
		cols = append(cols, "social_links")
		vals = append(vals, sq.Expr("?::jsonb", string(b)))
		updates = append(updates, "social_links = EXCLUDED.social_links")
	}
	if patch.SocialURLs != nil {
		b, err := json.Marshal(patch.SocialURLs)
		if err != nil {
			return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
		}
		cols = append(cols, "social_urls")
		vals = append(vals, sq.Expr("?::jsonb", string(b)))
		updates = append(updates, "social_urls = EXCLUDED.social_urls")
	}

	// The no-op update keeps RETURNING populated when nothing was patched.
	if len(updates) == 0 {
		updates = append(updates, "id = EXCLUDED.id")
	}
	suffix := fmt.Sprintf("ON CONFLICT (id) DO UPDATE SET %s RETURNING %s",
		strings.Join(updates, ", "), heroColumns)

	query, args, err := r.sb.Insert("hero_settings").
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	settings, err := scanHeroRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.HeroSettings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func scanHeroRow(row pgx.Row) (models.HeroSettings, error) {
	var (
		settings models.HeroSettings
		rawLinks []byte
		rawURLs  []byte
	)

	err := row.Scan(
		&settings.ID,
		&settings.BgImageURL,
		&settings.Title,
		&settings.DimIntensity,
		&rawLinks,
		&rawURLs,
	)
	if err != nil {
		return models.HeroSettings{}, err
	}

	if len(rawLinks) > 0 {
		if err := json.Unmarshal(rawLinks, &settings.SocialLinks); err != nil {
			return models.HeroSettings{}, fmt.Errorf("decode social_links: %w", err)
		}
	}
	if len(rawURLs) > 0 {
		if err := json.Unmarshal(rawURLs, &settings.SocialURLs); err != nil {
			return models.HeroSettings{}, fmt.Errorf("decode social_urls: %w", err)
		}
	}

	return settings, nil
}
