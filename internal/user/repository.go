package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront-be/internal/logger"
	"storefront-be/internal/permission"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, name, password string, perms []permission.Permission) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByResetToken(ctx context.Context, token string, notBefore time.Time) (*User, error)
	SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error
	UpdatePassword(ctx context.Context, userID uint, password string) error
	UpdatePermissions(ctx context.Context, userID uint, perms []permission.Permission) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, name, password, permissions, reset_token, reset_token_expiry, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	var perms pq.StringArray

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Password,
		&perms,
		&u.ResetToken,
		&u.ResetTokenExpiry,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Permissions = make([]permission.Permission, len(perms))
	for i, p := range perms {
		u.Permissions[i] = permission.Permission(p)
	}

	return &u, nil
}

func permsArray(perms []permission.Permission) pq.StringArray {
	out := make(pq.StringArray, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

func (r *repository) Create(ctx context.Context, email, name, password string, perms []permission.Permission) (*User, error) {
	log := logger.FromCtx(ctx)

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, name, password, permissions)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		email, name, password, permsArray(perms),
	)

	u, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	return u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// FindByResetToken matches a user whose stored token equals token and whose
// expiry has not passed notBefore.
func (r *repository) FindByResetToken(ctx context.Context, token string, notBefore time.Time) (*User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE reset_token = $1 AND reset_token_expiry >= $2`,
		token, notBefore)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidResetToken
	}
	return u, err
}

func (r *repository) SetResetToken(ctx context.Context, userID uint, token string, expiry time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET reset_token = $1, reset_token_expiry = $2, updated_at = NOW()
		 WHERE id = $3`,
		token, expiry, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePassword stores the new hash and clears any reset token.
func (r *repository) UpdatePassword(ctx context.Context, userID uint, password string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET password = $1, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		 WHERE id = $2`,
		password, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePermissions overwrites the permission set of the target user.
func (r *repository) UpdatePermissions(ctx context.Context, userID uint, perms []permission.Permission) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdatePermissions"),
		zap.Uint("user_id", userID),
	)

	row := r.db.QueryRowContext(ctx,
		`UPDATE users
		 SET permissions = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+userColumns,
		permsArray(perms), userID)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Error("failed to update permissions", zap.Error(err))
		return nil, err
	}

	log.Info("permissions updated")
	return u, nil
}

func (r *repository) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
