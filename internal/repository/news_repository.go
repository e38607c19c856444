package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"artfolio/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type NewsRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepo {
	return &NewsRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *NewsRepo) GetAll(ctx context.Context) ([]models.NewsPost, error) {
	const op = "repository.news_repository.GetAll"

	query, args, err := r.sb.Select(
		"id", "title", "summary", "category", "content", "image_url",
		"external_link", "is_published", "published_at", "created_at", "updated_at",
	).
		From("news_posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	posts := []models.NewsPost{}
	for rows.Next() {
		var (
			post        models.NewsPost
			category    *string
			isPublished *bool
			updatedAt   *time.Time
		)

		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Summary,
			&category,
			&post.Content,
			&post.ImageURL,
			&post.ExternalLink,
			&isPublished,
			&post.PublishedAt,
			&post.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Read defaults for nullable columns.
		post.Category = models.DefaultNewsCategory
		if category != nil && *category != "" {
			post.Category = *category
		}
		if isPublished != nil {
			post.IsPublished = *isPublished
		}
		post.UpdatedAt = post.CreatedAt
		if updatedAt != nil {
			post.UpdatedAt = *updatedAt
		}

		posts = append(posts, post)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Err())
	}

	return posts, nil
}

func (r *NewsRepo) Upsert(ctx context.Context, patch models.NewsPatch) error {
	const op = "repository.news_repository.Upsert"

	cols := []string{"title", "updated_at"}
	vals := []interface{}{patch.Title, time.Now().UTC()}
	updates := []string{"title = EXCLUDED.title", "updated_at = EXCLUDED.updated_at"}

	add := func(col string, set bool, val interface{}) {
		if !set {
			return
		}
		cols = append(cols, col)
		vals = append(vals, val)
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	add("summary", patch.Summary.Set, patch.Summary.Ptr())
	add("category", patch.Category.Set, patch.Category.Ptr())
	add("content", patch.Content.Set, patch.Content.Ptr())
	add("image_url", patch.ImageURL.Set, patch.ImageURL.Ptr())
	add("external_link", patch.ExternalLink.Set, patch.ExternalLink.Ptr())
	add("is_published", patch.IsPublished.Set, patch.IsPublished.Ptr())
	add("published_at", patch.PublishedAt.Set, patch.PublishedAt.Ptr())

	builder := r.sb.Insert("news_posts")
	if patch.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, patch.ID)
		builder = builder.Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", "))
	}

	query, args, err := builder.Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *NewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.news_repository.Delete"

	query, args, err := r.sb.Delete("news_posts").
		Where(sq.Eq{"id": id}).
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
