package graph

import (
	"context"
	"testing"

	"storefront-be/internal/cart"
	"storefront-be/internal/order"
	"storefront-be/internal/permission"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMutation_CreateOrder(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{OrderSvc: new(MockOrderService)}}

		_, err := m.CreateOrder(context.Background(), "tok_visa")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("Success", func(t *testing.T) {
		orderSvc := new(MockOrderService)
		m := &mutationResolver{&Resolver{OrderSvc: orderSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		orderSvc.On("Checkout", mock.Anything, uint(1), "tok_visa").
			Return(&order.Order{
				ID: 5, UserID: 1, Total: 11997, ChargeID: "ch_123",
				Items: []order.OrderItem{{ID: 50, Title: "Sunglasses", Price: 4999, Quantity: 2}},
			}, nil)

		o, err := m.CreateOrder(ctx, "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, "5", o.ID)
		assert.Equal(t, int32(11997), o.Total)
		assert.Equal(t, "ch_123", o.Charge)
		require.Len(t, o.Items, 1)
		assert.Equal(t, int32(2), o.Items[0].Quantity)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		orderSvc := new(MockOrderService)
		m := &mutationResolver{&Resolver{OrderSvc: orderSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		orderSvc.On("Checkout", mock.Anything, uint(1), "tok_visa").
			Return(nil, cart.ErrCartEmpty)

		_, err := m.CreateOrder(ctx, "tok_visa")
		assert.ErrorIs(t, err, cart.ErrCartEmpty)
	})
}

func TestQuery_Order(t *testing.T) {
	newResolver := func(perms ...permission.Permission) (*queryResolver, *MockOrderService, context.Context) {
		userSvc := new(MockUserService)
		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: perms}, nil)
		orderSvc := new(MockOrderService)
		q := &queryResolver{&Resolver{UserSvc: userSvc, OrderSvc: orderSvc}}
		return q, orderSvc, utils.SetUserContext(context.Background(), 1)
	}

	t.Run("Anonymous", func(t *testing.T) {
		q := &queryResolver{&Resolver{OrderSvc: new(MockOrderService)}}

		_, err := q.Order(context.Background(), "5")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("OwnerReads", func(t *testing.T) {
		q, orderSvc, ctx := newResolver(permission.User)

		orderSvc.On("GetOrder", mock.Anything, uint(1), uint(5), false).
			Return(&order.Order{ID: 5, UserID: 1, Total: 4999}, nil)

		o, err := q.Order(ctx, "5")
		require.NoError(t, err)
		assert.Equal(t, "5", o.ID)
	})

	t.Run("AdminFlagPassedThrough", func(t *testing.T) {
		q, orderSvc, ctx := newResolver(permission.Admin)

		orderSvc.On("GetOrder", mock.Anything, uint(1), uint(5), true).
			Return(&order.Order{ID: 5, UserID: 2}, nil)

		_, err := q.Order(ctx, "5")
		assert.NoError(t, err)
		orderSvc.AssertExpectations(t)
	})

	t.Run("StrangerRejected", func(t *testing.T) {
		q, orderSvc, ctx := newResolver(permission.User)

		orderSvc.On("GetOrder", mock.Anything, uint(1), uint(5), false).
			Return(nil, order.ErrNotOrderOwner)

		_, err := q.Order(ctx, "5")
		assert.ErrorIs(t, err, order.ErrNotOrderOwner)
	})
}

func TestQuery_Orders(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		q := &queryResolver{&Resolver{OrderSvc: new(MockOrderService)}}

		_, err := q.Orders(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("ListsCallerOrders", func(t *testing.T) {
		orderSvc := new(MockOrderService)
		q := &queryResolver{&Resolver{OrderSvc: orderSvc}}
		ctx := utils.SetUserContext(context.Background(), 1)

		orderSvc.On("ListOrders", mock.Anything, uint(1)).
			Return([]*order.Order{{ID: 5, UserID: 1}, {ID: 6, UserID: 1}}, nil)

		orders, err := q.Orders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}
