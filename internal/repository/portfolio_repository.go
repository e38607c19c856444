package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"artfolio/internal/domain/models"
	"artfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PortfolioRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PortfolioRepo) GetAll(ctx context.Context) ([]models.PortfolioSection, error) {
	const op = "repository.portfolio_repository.GetAll"

	query, args, err := r.sb.Select("id", "title", "description", "img_url", "order_rank").
		From("sections").
		OrderBy("order_rank ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sections []models.PortfolioSection
	var ids []uuid.UUID
	for rows.Next() {
		var s models.PortfolioSection
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.ImgURL, &s.OrderRank); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.Items = []models.SectionItem{}
		sections = append(sections, s)
		ids = append(ids, s.ID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: %w", op, rows.Err())
	}
	if len(sections) == 0 {
		return []models.PortfolioSection{}, nil
	}

	itemsBySection, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	inventoryBySection, err := r.inventoryFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range sections {
		if items, ok := itemsBySection[sections[i].ID]; ok {
			sections[i].Items = items
		}
		if inv, ok := inventoryBySection[sections[i].ID]; ok {
			sections[i].Inventory = &inv
		}
	}

	return sections, nil
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PortfolioSection, error) {
	const op = "repository.portfolio_repository.GetByID"

	query, args, err := r.sb.Select("id", "title", "description", "img_url", "order_rank").
		From("sections").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var s models.PortfolioSection
	err = r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Title, &s.Description, &s.ImgURL, &s.OrderRank)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSectionNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.Items = []models.SectionItem{}
	itemsBySection, err := r.itemsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items, ok := itemsBySection[id]; ok {
		s.Items = items
	}

	inventoryBySection, err := r.inventoryFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if inv, ok := inventoryBySection[id]; ok {
		s.Inventory = &inv
	}

	return &s, nil
}

func (r *PortfolioRepo) UpsertSection(ctx context.Context, patch models.SectionPatch) (uuid.UUID, error) {
	const op = "repository.portfolio_repository.UpsertSection"

	// order_rank is NOT NULL without a default, so it is always written.
	cols := []string{"order_rank"}
	vals := []interface{}{patch.OrderRank.Value}
	updates := []string{"order_rank = EXCLUDED.order_rank"}

	if patch.Title.Set {
		cols = append(cols, "title")
		vals = append(vals, patch.Title.Ptr())
		updates = append(updates, "title = EXCLUDED.title")
	}
	if patch.Description.Set {
		cols = append(cols, "description")
		vals = append(vals, patch.Description.Ptr())
		updates = append(updates, "description = EXCLUDED.description")
	}
	if patch.ImgURL.Set {
		cols = append(cols, "img_url")
		vals = append(vals, patch.ImgURL.Ptr())
		updates = append(updates, "img_url = EXCLUDED.img_url")
	}

	builder := r.sb.Insert("sections")
	if patch.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, patch.ID)
		builder = builder.Suffix(fmt.Sprintf(
			"ON CONFLICT (id) DO UPDATE SET %s RETURNING id", strings.Join(updates, ", ")))
	} else {
		builder = builder.Suffix("RETURNING id")
	}

	query, args, err := builder.Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *PortfolioRepo) UpsertInventory(ctx context.Context, inventory models.InventoryItem) error {
	const op = "repository.portfolio_repository.UpsertInventory"

	query, args, err := r.sb.Insert("inventory").
		Columns("section_id", "stock_qty", "price", "stripe_link", "is_sale_active").
		Values(inventory.SectionID, inventory.StockQty, inventory.Price, inventory.StripeLink, inventory.IsSaleActive).
		Suffix(`ON CONFLICT (section_id) DO UPDATE SET
			stock_qty = EXCLUDED.stock_qty,
			price = EXCLUDED.price,
			stripe_link = EXCLUDED.stripe_link,
			is_sale_active = EXCLUDED.is_sale_active`).
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

const itemColumns = "id, section_id, title, description, image_url, price, stock_qty, stripe_link, is_sale_active, order_rank"

func (r *PortfolioRepo) UpsertItem(ctx context.Context, item models.SectionItem) (models.SectionItem, error) {
	const op = "repository.portfolio_repository.UpsertItem"

	cols := []string{"section_id", "title", "description", "image_url", "price", "stock_qty", "stripe_link", "is_sale_active", "order_rank"}
	vals := []interface{}{item.SectionID, item.Title, item.Description, item.ImageURL, item.Price, item.StockQty, item.StripeLink, item.IsSaleActive, item.OrderRank}

	builder := r.sb.Insert("section_items")
	if item.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, item.ID)
		builder = builder.Suffix(`ON CONFLICT (id) DO UPDATE SET
			section_id = EXCLUDED.section_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			price = EXCLUDED.price,
			stock_qty = EXCLUDED.stock_qty,
			stripe_link = EXCLUDED.stripe_link,
			is_sale_active = EXCLUDED.is_sale_active,
			order_rank = EXCLUDED.order_rank
			RETURNING ` + itemColumns)
	} else {
		builder = builder.Suffix("RETURNING " + itemColumns)
	}

	query, args, err := builder.Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return models.SectionItem{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := scanItemRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return models.SectionItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (r *PortfolioRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	const op = "repository.portfolio_repository.DeleteItem"

	query, args, err := r.sb.Delete("section_items").
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

// DeleteSection removes the section row; owned items and inventory go with it
// through the ON DELETE CASCADE constraints.
func (r *PortfolioRepo) DeleteSection(ctx context.Context, id uuid.UUID) error {
	const op = "repository.portfolio_repository.DeleteSection"

	query, args, err := r.sb.Delete("sections").
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

func (r *PortfolioRepo) itemsFor(ctx context.Context, sectionIDs []uuid.UUID) (map[uuid.UUID][]models.SectionItem, error) {
	query, args, err := r.sb.Select(strings.Split(itemColumns, ", ")...).
		From("section_items").
		Where(sq.Eq{"section_id": sectionIDs}).
		OrderBy("order_rank ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]models.SectionItem)
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		grouped[item.SectionID] = append(grouped[item.SectionID], item)
	}

	return grouped, rows.Err()
}

func (r *PortfolioRepo) inventoryFor(ctx context.Context, sectionIDs []uuid.UUID) (map[uuid.UUID]models.InventoryItem, error) {
	query, args, err := r.sb.Select("section_id", "stock_qty", "price", "stripe_link", "is_sale_active").
		From("inventory").
		Where(sq.Eq{"section_id": sectionIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID]models.InventoryItem)
	for rows.Next() {
		var inv models.InventoryItem
		if err := rows.Scan(&inv.SectionID, &inv.StockQty, &inv.Price, &inv.StripeLink, &inv.IsSaleActive); err != nil {
			return nil, err
		}
		grouped[inv.SectionID] = inv
	}

	return grouped, rows.Err()
}

// scanItemRow maps a section_items row to the domain shape, filling the read
// defaults for nullable columns: empty title becomes "Untitled", numeric and
// boolean nulls become zero values.
func scanItemRow(row pgx.Row) (models.SectionItem, error) {
	var (
		item       models.SectionItem
		title      *string
		price      *float64
		stockQty   *int
		saleActive *bool
		orderRank  *int
	)

	err := row.Scan(
		&item.ID,
		&item.SectionID,
		&title,
		&item.Description,
		&item.ImageURL,
		&price,
		&stockQty,
		&item.StripeLink,
		&saleActive,
		&orderRank,
	)
	if err != nil {
		return models.SectionItem{}, err
	}

	item.Title = "Untitled"
	if title != nil && *title != "" {
		item.Title = *title
	}
	if price != nil {
		item.Price = *price
	}
	if stockQty != nil {
		item.StockQty = *stockQty
	}
	if saleActive != nil {
		item.IsSaleActive = *saleActive
	}
	if orderRank != nil {
		item.OrderRank = *orderRank
	}

	return item, nil
}
