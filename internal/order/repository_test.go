package order

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateOrderTx(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsOrderSnapshotsAndClearsCart", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders \(user_id, total, charge_id\)`).
			WithArgs(1, 11997, "ch_123").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(5, "Sunglasses", "Nice shades", 4999, nil, nil, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(50))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WithArgs(5, "Hat", "Warm hat", 1999, nil, nil, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(51))
		mock.ExpectExec(`DELETE FROM carts WHERE user_id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		o, err := repo.CreateOrderTx(ctx, &Order{
			UserID:   1,
			Total:    11997,
			ChargeID: "ch_123",
			Items: []OrderItem{
				{Title: "Sunglasses", Description: "Nice shades", Price: 4999, Quantity: 2},
				{Title: "Hat", Description: "Warm hat", Price: 1999, Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), o.ID)
		assert.Equal(t, uint(5), o.Items[0].OrderID)
		assert.Equal(t, uint(50), o.Items[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SnapshotFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		_, err = repo.CreateOrderTx(ctx, &Order{
			UserID:   1,
			Total:    4999,
			ChargeID: "ch_123",
			Items:    []OrderItem{{Title: "Sunglasses", Price: 4999, Quantity: 1}},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("LoadsOrderWithItems", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, total, charge_id, created_at\s+FROM orders\s+WHERE id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total", "charge_id", "created_at"}).
				AddRow(5, 1, 11997, "ch_123", time.Now()))
		mock.ExpectQuery(`SELECT id, order_id, title, description, price, image, large_image, quantity\s+FROM order_items\s+WHERE order_id = \$1`).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "order_id", "title", "description", "price", "image", "large_image", "quantity",
			}).AddRow(50, 5, "Sunglasses", "Nice shades", 4999, nil, nil, 2))

		o, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 11997, o.Total)
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Sunglasses", o.Items[0].Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, total, charge_id, created_at\s+FROM orders\s+WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT id, user_id, total, charge_id, created_at\s+FROM orders\s+WHERE user_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total", "charge_id", "created_at"}).
			AddRow(5, 1, 11997, "ch_123", time.Now()).
			AddRow(6, 1, 1999, "ch_456", time.Now()))
	mock.ExpectQuery(`FROM order_items\s+WHERE order_id = \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "title", "description", "price", "image", "large_image", "quantity",
		}).AddRow(50, 5, "Sunglasses", "Nice shades", 4999, nil, nil, 2))
	mock.ExpectQuery(`FROM order_items\s+WHERE order_id = \$1`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "title", "description", "price", "image", "large_image", "quantity",
		}).AddRow(51, 6, "Hat", "Warm hat", 1999, nil, nil, 1))

	orders, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Hat", orders[1].Items[0].Title)
}
