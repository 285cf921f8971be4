package graph

import (
	"storefront-be/internal/cart"
	"storefront-be/internal/item"
	"storefront-be/internal/order"
	"storefront-be/internal/user"

	"github.com/99designs/gqlgen/graphql"
)

//go:generate go run github.com/99designs/gqlgen generate

type Resolver struct {
	UserSvc  user.Service
	ItemSvc  item.Service
	CartSvc  cart.Service
	OrderSvc order.Service
}

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }
func (r *Resolver) Query() QueryResolver       { return &queryResolver{r} }

func NewSchema(r *Resolver) graphql.ExecutableSchema {
	return NewExecutableSchema(Config{
		Resolvers: r,
		Directives: DirectiveRoot{
			Auth: AuthDirective,
		},
	})
}
