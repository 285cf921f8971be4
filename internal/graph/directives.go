package graph

import (
	"context"

	"storefront-be/internal/utils"

	"github.com/99designs/gqlgen/graphql"
)

// AuthDirective rejects anonymous callers. Permission checks stay in the
// resolvers, which have the fetched user at hand.
func AuthDirective(ctx context.Context, obj interface{}, next graphql.Resolver) (res interface{}, err error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, ErrNotAuthenticated
	}
	return next(ctx)
}
