package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartRows(id, userID, itemID, quantity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "item_id", "quantity", "created_at", "updated_at",
	}).AddRow(id, userID, itemID, quantity, time.Now(), time.Now())
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	// One statement handles both the fresh insert and the quantity bump,
	// so two adds racing on the same (user, item) cannot trip the unique
	// constraint.
	upsertStmt := `INSERT INTO carts \(user_id, item_id, quantity\)\s+VALUES \(\$1, \$2, 1\)\s+ON CONFLICT \(user_id, item_id\)\s+DO UPDATE SET quantity = carts\.quantity \+ 1, updated_at = NOW\(\)`

	t.Run("FirstAddInsertsQuantityOne", func(t *testing.T) {
		mock.ExpectQuery(upsertStmt).
			WithArgs(1, 7).
			WillReturnRows(cartRows(10, 1, 7, 1))

		c, err := repo.Upsert(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Quantity)
	})

	t.Run("RepeatedAddBumpsQuantity", func(t *testing.T) {
		mock.ExpectQuery(upsertStmt).
			WithArgs(1, 7).
			WillReturnRows(cartRows(10, 1, 7, 2))

		c, err := repo.Upsert(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(10), c.ID)
		assert.Equal(t, 2, c.Quantity)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM carts WHERE id = \$1`).
			WithArgs(10).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 10))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM carts WHERE id = \$1`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), ErrCartItemNotFound)
	})
}

func TestRepository_GetUserCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "item_id", "quantity", "created_at", "updated_at",
		"id", "title", "description", "price", "image", "large_image",
		"user_id", "created_at", "updated_at",
	}).
		AddRow(10, 1, 7, 2, time.Now(), time.Now(),
			7, "Sunglasses", "Nice shades", 4999, nil, nil, 3, time.Now(), time.Now()).
		AddRow(11, 1, 8, 1, time.Now(), time.Now(),
			8, "Hat", "Warm hat", 1999, nil, nil, 3, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT\s+c\.id, c\.user_id, c\.item_id, c\.quantity.*FROM carts c\s+JOIN items i ON c\.item_id = i\.id\s+WHERE c\.user_id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	items, err := repo.GetUserCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Item)
	assert.Equal(t, "Sunglasses", items[0].Item.Title)
	assert.Equal(t, 4999, items[0].Item.Price)
	assert.Equal(t, 2, items[0].Quantity)
}
