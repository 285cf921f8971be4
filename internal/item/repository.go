package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateItemParams) (*Item, error)
	Update(ctx context.Context, params UpdateItemParams) (*Item, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context, filter *ListFilter, sort *ListSort, limit, page *int32) ([]*Item, error)
	Count(ctx context.Context, filter *ListFilter) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const itemColumns = `id, title, description, price, image, large_image, user_id, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	var it Item
	err := row.Scan(
		&it.ID,
		&it.Title,
		&it.Description,
		&it.Price,
		&it.Image,
		&it.LargeImage,
		&it.UserID,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) Create(ctx context.Context, params CreateItemParams) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.Uint("user_id", params.UserID),
	)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO items (title, description, price, image, large_image, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+itemColumns,
		params.Title,
		params.Description,
		params.Price,
		params.Image,
		params.LargeImage,
		params.UserID,
	)

	it, err := scanItem(row)
	if err != nil {
		log.Error("failed to create item", zap.Error(err))
		return nil, err
	}

	log.Info("item created", zap.Uint("item_id", it.ID))
	return it, nil
}

// Update applies only the fields that are set; id itself is never updated.
func (r *repository) Update(ctx context.Context, params UpdateItemParams) (*Item, error) {
	set := []string{}
	args := []any{}

	if params.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", len(args)+1))
		args = append(args, *params.Title)
	}
	if params.Description != nil {
		set = append(set, fmt.Sprintf("description = $%d", len(args)+1))
		args = append(args, *params.Description)
	}
	if params.Price != nil {
		set = append(set, fmt.Sprintf("price = $%d", len(args)+1))
		args = append(args, *params.Price)
	}

	if len(set) == 0 {
		return nil, ErrNothingToSave
	}

	set = append(set, "updated_at = NOW()")
	args = append(args, params.ID)

	query := `UPDATE items SET ` + strings.Join(set, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return it, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)

	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	return it, err
}

func (r *repository) List(
	ctx context.Context,
	filter *ListFilter,
	sort *ListSort,
	limit, page *int32,
) ([]*Item, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListItems"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if page != nil && *page > 0 {
		finalPage = *page
	}

	offset := (finalPage - 1) * finalLimit

	// ---------- where ----------
	where := []string{"1=1"}
	args := []any{}

	if filter != nil && filter.Search != nil && *filter.Search != "" {
		where = append(where,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)",
				len(args)+1, len(args)+1),
		)
		args = append(args, "%"+*filter.Search+"%")
	}

	// ---------- sort ----------
	orderBy := "created_at DESC"
	if sort != nil {
		field := "created_at"
		switch sort.Field {
		case "price":
			field = "price"
		case "title":
			field = "title"
		}

		dir := "DESC"
		if strings.EqualFold(sort.Direction, "asc") {
			dir = "ASC"
		}

		orderBy = field + " " + dir
	}

	query := `SELECT ` + itemColumns + ` FROM items
	 WHERE ` + strings.Join(where, " AND ") + `
	 ORDER BY ` + orderBy + `
	 LIMIT $` + fmt.Sprint(len(args)+1) + `
	 OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	items := make([]*Item, 0, finalLimit)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return items, nil
}

func (r *repository) Count(ctx context.Context, filter *ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM items`
	args := []any{}

	if filter != nil && filter.Search != nil && *filter.Search != "" {
		query += ` WHERE title ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+*filter.Search+"%")
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}
