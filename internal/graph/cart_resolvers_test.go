package graph

import (
	"context"
	"testing"

	"storefront-be/internal/cart"
	"storefront-be/internal/item"
	"storefront-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMutation_AddToCart(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{CartSvc: new(MockCartService)}}

		_, err := m.AddToCart(context.Background(), "7")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("ReturnsUpsertedRow", func(t *testing.T) {
		cartSvc := new(MockCartService)
		m := &mutationResolver{&Resolver{CartSvc: cartSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		cartSvc.On("AddToCart", mock.Anything, uint(1), uint(7)).
			Return(&cart.CartItem{ID: 10, UserID: 1, ItemID: 7, Quantity: 3,
				Item: &item.Item{ID: 7, Title: "Sunglasses", Price: 4999}}, nil)

		row, err := m.AddToCart(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "10", row.ID)
		assert.Equal(t, int32(3), row.Quantity)
		require.NotNil(t, row.Item)
		assert.Equal(t, "Sunglasses", row.Item.Title)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		cartSvc := new(MockCartService)
		m := &mutationResolver{&Resolver{CartSvc: cartSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		cartSvc.On("AddToCart", mock.Anything, uint(1), uint(99)).
			Return(nil, item.ErrItemNotFound)

		_, err := m.AddToCart(ctx, "99")
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})
}

func TestMutation_RemoveFromCart(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{CartSvc: new(MockCartService)}}

		_, err := m.RemoveFromCart(context.Background(), "10")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("ReturnsRemovedRow", func(t *testing.T) {
		cartSvc := new(MockCartService)
		m := &mutationResolver{&Resolver{CartSvc: cartSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		cartSvc.On("RemoveFromCart", mock.Anything, uint(1), uint(10)).
			Return(&cart.CartItem{ID: 10, UserID: 1, ItemID: 7, Quantity: 2}, nil)

		row, err := m.RemoveFromCart(ctx, "10")
		require.NoError(t, err)
		assert.Equal(t, "10", row.ID)
	})

	t.Run("ForeignRow", func(t *testing.T) {
		cartSvc := new(MockCartService)
		m := &mutationResolver{&Resolver{CartSvc: cartSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		cartSvc.On("RemoveFromCart", mock.Anything, uint(1), uint(10)).
			Return(nil, cart.ErrNotCartOwner)

		_, err := m.RemoveFromCart(ctx, "10")
		assert.ErrorIs(t, err, cart.ErrNotCartOwner)
	})
}

func TestQuery_MyCart(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		q := &queryResolver{&Resolver{CartSvc: new(MockCartService)}}

		_, err := q.MyCart(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("ReturnsRowsWithItems", func(t *testing.T) {
		cartSvc := new(MockCartService)
		q := &queryResolver{&Resolver{CartSvc: cartSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		cartSvc.On("GetCart", mock.Anything, uint(1)).
			Return([]*cart.CartItem{
				{ID: 10, Quantity: 2, Item: &item.Item{ID: 7, Title: "Sunglasses"}},
				{ID: 11, Quantity: 1, Item: &item.Item{ID: 8, Title: "Hat"}},
			}, nil)

		rows, err := q.MyCart(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Hat", rows[1].Item.Title)
	})
}
