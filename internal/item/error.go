package item

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrNothingToSave = errors.New("no item fields to update")
)
