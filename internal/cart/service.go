package cart

import (
	"context"

	"storefront-be/internal/item"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddToCart(ctx context.Context, userID, itemID uint) (*CartItem, error)
	RemoveFromCart(ctx context.Context, userID, cartItemID uint) (*CartItem, error)
	GetCart(ctx context.Context, userID uint) ([]*CartItem, error)
}

type service struct {
	repo     Repository
	itemRepo item.Repository
}

func NewService(repo Repository, itemRepo item.Repository) Service {
	return &service{repo: repo, itemRepo: itemRepo}
}

// AddToCart adds an item to the user's cart. A repeated add increments the
// quantity of the existing row instead of creating a duplicate; the upsert
// happens in one statement so concurrent adds cannot collide.
func (s *service) AddToCart(ctx context.Context, userID, itemID uint) (*CartItem, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	return s.repo.Upsert(ctx, userID, itemID)
}

// RemoveFromCart deletes a cart row after verifying it belongs to the
// caller, returning the removed row.
func (s *service) RemoveFromCart(ctx context.Context, userID, cartItemID uint) (*CartItem, error) {
	row, err := s.repo.GetByID(ctx, cartItemID)
	if err != nil {
		return nil, err
	}

	if row.UserID != userID {
		logger.FromCtx(ctx).Warn("cart ownership check failed",
			zap.Uint("cart_item_id", cartItemID),
			zap.Uint("owner_id", row.UserID),
			zap.Uint("caller_id", userID),
		)
		return nil, ErrNotCartOwner
	}

	if err := s.repo.Delete(ctx, cartItemID); err != nil {
		return nil, err
	}

	return row, nil
}

func (s *service) GetCart(ctx context.Context, userID uint) ([]*CartItem, error) {
	return s.repo.GetUserCart(ctx, userID)
}
