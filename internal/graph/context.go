package graph

import (
	"context"

	"storefront-be/internal/user"
	"storefront-be/internal/utils"
)

// currentUser fetches the caller's full record, permission set included.
// Returns ErrNotAuthenticated for anonymous requests.
func (r *Resolver) currentUser(ctx context.Context) (*user.User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	return r.UserSvc.GetByID(ctx, userID)
}
