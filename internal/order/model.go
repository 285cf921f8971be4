package order

import "time"

// Order is an immutable purchase snapshot, decoupled from live items so
// later edits or deletions never alter purchase history.
type Order struct {
	ID        uint
	UserID    uint
	Total     int
	ChargeID  string
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem is a denormalized copy of the item fields at purchase time.
type OrderItem struct {
	ID          uint
	OrderID     uint
	Title       string
	Description string
	Price       int
	Image       *string
	LargeImage  *string
	Quantity    int
}
