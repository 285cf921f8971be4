package cart

import "errors"

var (
	// -- Authorization --
	ErrNotCartOwner = errors.New("cart item belongs to another user")

	// -- Resource State --
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)
