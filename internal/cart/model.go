package cart

import (
	"time"

	"storefront-be/internal/item"
)

// CartItem joins a user and an item with a quantity. At most one row exists
// per (user, item) pair; repeat adds increment the quantity.
type CartItem struct {
	ID        uint
	UserID    uint
	ItemID    uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time

	Item *item.Item
}
