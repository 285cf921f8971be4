package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"storefront-be/internal/permission"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(id int, email, perms string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "name", "password", "permissions",
		"reset_token", "reset_token_expiry", "created_at", "updated_at",
	}).AddRow(id, email, "Test User", "hashed", perms, nil, nil, time.Now(), time.Now())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users \(email, name, password, permissions\)`).
			WithArgs("john@example.com", "John", "hashed", pq.StringArray{"USER"}).
			WillReturnRows(userRows(1, "john@example.com", "{USER}"))

		u, err := repo.Create(ctx, "john@example.com", "John", "hashed",
			[]permission.Permission{permission.User})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, "john@example.com", u.Email)
		assert.Equal(t, []permission.Permission{permission.User}, u.Permissions)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(ctx, "john@example.com", "John", "hashed",
			[]permission.Permission{permission.User})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("db error"))

		_, err := repo.Create(ctx, "john@example.com", "John", "hashed", nil)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("john@example.com").
			WillReturnRows(userRows(1, "john@example.com", "{USER,ADMIN}"))

		u, err := repo.FindByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.Len(t, u.Permissions, 2)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_FindByResetToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users\s+WHERE reset_token = \$1 AND reset_token_expiry >= \$2`).
			WithArgs("tok123", now).
			WillReturnRows(userRows(4, "resetme@example.com", "{USER}"))

		u, err := repo.FindByResetToken(ctx, "tok123", now)
		assert.NoError(t, err)
		assert.Equal(t, uint(4), u.ID)
	})

	t.Run("ExpiredOrUnknown", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM users\s+WHERE reset_token = \$1 AND reset_token_expiry >= \$2`).
			WithArgs("stale", now).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.FindByResetToken(ctx, "stale", now)
		assert.ErrorIs(t, err, ErrInvalidResetToken)
	})
}

func TestRepository_SetResetToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users\s+SET reset_token = \$1, reset_token_expiry = \$2`).
			WithArgs("tok123", expiry, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SetResetToken(ctx, 1, "tok123", expiry)
		assert.NoError(t, err)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users\s+SET reset_token = \$1, reset_token_expiry = \$2`).
			WithArgs("tok123", expiry, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SetResetToken(ctx, 99, "tok123", expiry)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_UpdatePassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("ClearsResetToken", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users\s+SET password = \$1, reset_token = NULL, reset_token_expiry = NULL`).
			WithArgs("newhash", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePassword(ctx, 1, "newhash")
		assert.NoError(t, err)
	})
}

func TestRepository_UpdatePermissions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Overwrite", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users\s+SET permissions = \$1`).
			WithArgs(pq.StringArray{"ADMIN", "USER"}, 2).
			WillReturnRows(userRows(2, "admin@example.com", "{ADMIN,USER}"))

		u, err := repo.UpdatePermissions(ctx, 2,
			[]permission.Permission{permission.Admin, permission.User})
		assert.NoError(t, err)
		assert.Equal(t,
			[]permission.Permission{permission.Admin, permission.User},
			u.Permissions)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE users\s+SET permissions = \$1`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdatePermissions(ctx, 99, nil)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := userRows(1, "a@example.com", "{USER}").
		AddRow(2, "b@example.com", "B", "hashed", "{ADMIN}", nil, nil, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY id`).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
