package item

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemRows(id int, title string, price int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "price", "image", "large_image",
		"user_id", "created_at", "updated_at",
	}).AddRow(id, title, "desc", price, nil, nil, 1, time.Now(), time.Now())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO items \(title, description, price, image, large_image, user_id\)`).
		WithArgs("Sunglasses", "Nice shades", 4999, nil, nil, 1).
		WillReturnRows(itemRows(7, "Sunglasses", 4999))

	it, err := repo.Create(context.Background(), CreateItemParams{
		Title:       "Sunglasses",
		Description: "Nice shades",
		Price:       4999,
		UserID:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), it.ID)
	assert.Equal(t, 4999, it.Price)
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("PartialUpdateOnlyTouchesSetFields", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE items SET price = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(5999, 7).
			WillReturnRows(itemRows(7, "Sunglasses", 5999))

		newPrice := 5999
		it, err := repo.Update(ctx, UpdateItemParams{
			ID:    7,
			Price: &newPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, 5999, it.Price)
	})

	t.Run("NothingToSave", func(t *testing.T) {
		_, err := repo.Update(ctx, UpdateItemParams{ID: 7})
		assert.ErrorIs(t, err, ErrNothingToSave)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE items SET title = \$1`).
			WithArgs("New title", 99).
			WillReturnError(sql.ErrNoRows)

		newTitle := "New title"
		_, err := repo.Update(ctx, UpdateItemParams{
			ID:    99,
			Title: &newTitle,
		})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM items WHERE id = \$1`).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM items WHERE id = \$1`).
			WithArgs(99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), ErrItemNotFound)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM items WHERE id = \$1`).
			WithArgs(7).
			WillReturnRows(itemRows(7, "Sunglasses", 4999))

		it, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Sunglasses", it.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM items WHERE id = \$1`).
			WithArgs(99).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("DefaultPagination", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM items\s+WHERE 1=1\s+ORDER BY created_at DESC\s+LIMIT \$1\s+OFFSET \$2`).
			WithArgs(int32(20), int32(0)).
			WillReturnRows(itemRows(1, "A", 100).AddRow(2, "B", "desc", 200, nil, nil, 1, time.Now(), time.Now()))

		items, err := repo.List(ctx, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("SearchAndSort", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM items\s+WHERE 1=1 AND \(title ILIKE \$1 OR description ILIKE \$1\)\s+ORDER BY price ASC`).
			WithArgs("%glasses%", int32(10), int32(10)).
			WillReturnRows(itemRows(1, "Sunglasses", 100))

		search := "glasses"
		limit, page := int32(10), int32(2)
		items, err := repo.List(ctx,
			&ListFilter{Search: &search},
			&ListSort{Field: "price", Direction: "asc"},
			&limit, &page)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("LimitCappedAt100", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM items`).
			WithArgs(int32(100), int32(0)).
			WillReturnRows(itemRows(1, "A", 100))

		limit := int32(500)
		_, err := repo.List(ctx, nil, nil, &limit, nil)
		require.NoError(t, err)
	})
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("NoFilter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM items`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.Count(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 42, count)
	})

	t.Run("WithSearch", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM items WHERE title ILIKE \$1 OR description ILIKE \$1`).
			WithArgs("%glasses%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		search := "glasses"
		count, err := repo.Count(ctx, &ListFilter{Search: &search})
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
