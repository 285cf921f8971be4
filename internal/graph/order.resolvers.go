package graph

import (
	"context"

	"storefront-be/internal/graph/model"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"
	"storefront-be/internal/permission"
	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

func (r *mutationResolver) CreateOrder(ctx context.Context, token string) (*model.Order, error) {
	log := logger.FromCtx(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	o, err := r.OrderSvc.Checkout(ctx, userID, token)
	if err != nil {
		log.Warn("checkout failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("user_id", userID),
		zap.Int("total", o.Total),
	)

	return mapOrderToGraphQL(o), nil
}

func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	orderID, err := utils.ToUint(id)
	if err != nil {
		return nil, order.ErrOrderNotFound
	}

	isAdmin := caller.HasPermission(permission.Admin)
	o, err := r.OrderSvc.GetOrder(ctx, caller.ID, orderID, isAdmin)
	if err != nil {
		return nil, err
	}

	return mapOrderToGraphQL(o), nil
}

func (r *queryResolver) Orders(ctx context.Context) ([]*model.Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	orders, err := r.OrderSvc.ListOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrderToGraphQL(o))
	}

	return out, nil
}
