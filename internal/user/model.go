package user

import (
	"time"

	"storefront-be/internal/permission"
)

type User struct {
	ID               uint
	Email            string
	Name             string
	Password         string
	Permissions      []permission.Permission
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasPermission reports whether the user holds any of the given labels.
func (u *User) HasPermission(required ...permission.Permission) bool {
	return permission.Has(u.Permissions, required...)
}
