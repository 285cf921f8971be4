package permission

import (
	"errors"
	"fmt"
	"strings"
)

// Permission is a label granting access to specific mutations and queries.
type Permission string

const (
	Admin            Permission = "ADMIN"
	User             Permission = "USER"
	ItemCreate       Permission = "ITEMCREATE"
	ItemUpdate       Permission = "ITEMUPDATE"
	ItemDelete       Permission = "ITEMDELETE"
	PermissionUpdate Permission = "PERMISSIONUPDATE"
)

var ErrUnauthorized = errors.New("insufficient permissions")

// All lists every known permission label.
var All = []Permission{Admin, User, ItemCreate, ItemUpdate, ItemDelete, PermissionUpdate}

// Valid reports whether p is a known label.
func Valid(p Permission) bool {
	for _, known := range All {
		if p == known {
			return true
		}
	}
	return false
}

// Require fails unless held and required intersect. It only inspects the
// already-fetched permission set; no lookups happen here.
func Require(held []Permission, required ...Permission) error {
	for _, h := range held {
		for _, r := range required {
			if h == r {
				return nil
			}
		}
	}

	names := make([]string, len(required))
	for i, r := range required {
		names[i] = string(r)
	}
	return fmt.Errorf("%w: need one of %s", ErrUnauthorized, strings.Join(names, ", "))
}

// Has reports whether held contains any of required.
func Has(held []Permission, required ...Permission) bool {
	return Require(held, required...) == nil
}
