package cart

import (
	"context"
	"database/sql"
	"errors"

	"storefront-be/internal/item"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Upsert(ctx context.Context, userID, itemID uint) (*CartItem, error)
	GetByID(ctx context.Context, id uint) (*CartItem, error)
	Delete(ctx context.Context, id uint) error
	GetUserCart(ctx context.Context, userID uint) ([]*CartItem, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const cartColumns = `id, user_id, item_id, quantity, created_at, updated_at`

func scanCartItem(row interface{ Scan(...any) error }) (*CartItem, error) {
	var c CartItem
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.ItemID,
		&c.Quantity,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert inserts a cart row for (user, item) or, when one already exists,
// bumps its quantity by one. The conflict clause keeps concurrent adds of
// the same item from tripping the unique constraint.
func (r *repository) Upsert(ctx context.Context, userID, itemID uint) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertCartItem"),
		zap.Uint("user_id", userID),
		zap.Uint("item_id", itemID),
	)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO carts (user_id, item_id, quantity)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, item_id)
		 DO UPDATE SET quantity = carts.quantity + 1, updated_at = NOW()
		 RETURNING `+cartColumns,
		userID, itemID)

	c, err := scanCartItem(row)
	if err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item upserted",
		zap.Uint("cart_item_id", c.ID),
		zap.Int("quantity", c.Quantity),
	)
	return c, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*CartItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cartColumns+` FROM carts WHERE id = $1`, id)

	c, err := scanCartItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	return c, err
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// GetUserCart returns the user's cart rows with the live item attached.
func (r *repository) GetUserCart(ctx context.Context, userID uint) ([]*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetUserCart"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			c.id, c.user_id, c.item_id, c.quantity, c.created_at, c.updated_at,
			i.id, i.title, i.description, i.price, i.image, i.large_image,
			i.user_id, i.created_at, i.updated_at
		FROM carts c
		JOIN items i ON c.item_id = i.id
		WHERE c.user_id = $1
		ORDER BY c.created_at
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []*CartItem
	for rows.Next() {
		var c CartItem
		var it item.Item
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.ItemID, &c.Quantity, &c.CreatedAt, &c.UpdatedAt,
			&it.ID, &it.Title, &it.Description, &it.Price, &it.Image, &it.LargeImage,
			&it.UserID, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		c.Item = &it
		result = append(result, &c)
	}

	return result, rows.Err()
}
