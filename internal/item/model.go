package item

import "time"

// Item is a sellable product. Price is in integer cents.
type Item struct {
	ID          uint
	Title       string
	Description string
	Price       int
	Image       *string
	LargeImage  *string
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateItemParams struct {
	Title       string
	Description string
	Price       int
	Image       *string
	LargeImage  *string
	UserID      uint
}

// UpdateItemParams carries a partial field update; nil fields are left
// untouched.
type UpdateItemParams struct {
	ID          uint
	Title       *string
	Description *string
	Price       *int
}

type ListFilter struct {
	Search *string
}

type ListSort struct {
	Field     string
	Direction string
}
