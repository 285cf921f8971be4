package graph

import (
	"context"

	"storefront-be/internal/cart"
	"storefront-be/internal/graph/model"
	"storefront-be/internal/logger"
	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

func (r *mutationResolver) AddToCart(ctx context.Context, itemID string) (*model.CartItem, error) {
	log := logger.FromCtx(ctx).With(zap.String("item_id", itemID))

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Warn("unauthorized add to cart")
		return nil, ErrNotAuthenticated
	}

	id, err := utils.ToUint(itemID)
	if err != nil {
		return nil, cart.ErrCartItemNotFound
	}

	row, err := r.CartSvc.AddToCart(ctx, userID, id)
	if err != nil {
		log.Warn("failed to add item to cart", zap.Error(err))
		return nil, err
	}

	log.Info("cart item added",
		zap.Uint("cart_item_id", row.ID),
		zap.Int("quantity", row.Quantity),
	)

	return mapCartItemToGraphQL(row), nil
}

func (r *mutationResolver) RemoveFromCart(ctx context.Context, id string) (*model.CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	cartItemID, err := utils.ToUint(id)
	if err != nil {
		return nil, cart.ErrCartItemNotFound
	}

	removed, err := r.CartSvc.RemoveFromCart(ctx, userID, cartItemID)
	if err != nil {
		return nil, err
	}

	return mapCartItemToGraphQL(removed), nil
}

func (r *queryResolver) MyCart(ctx context.Context) ([]*model.CartItem, error) {
	log := logger.FromCtx(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	rows, err := r.CartSvc.GetCart(ctx, userID)
	if err != nil {
		log.Error("failed to fetch cart", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	out := make([]*model.CartItem, 0, len(rows))
	for _, c := range rows {
		out = append(out, mapCartItemToGraphQL(c))
	}

	return out, nil
}
