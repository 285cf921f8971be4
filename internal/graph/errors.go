package graph

import "errors"

var (
	ErrNotAuthenticated = errors.New("you must be logged in to do that")
	ErrForbidden        = errors.New("you don't have permission to do that")
)
