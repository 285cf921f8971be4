package order

import (
	"context"
	"fmt"

	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/payment"

	"go.uber.org/zap"
)

type Service interface {
	// Checkout charges the caller's cart and materializes an order from it.
	Checkout(ctx context.Context, userID uint, sourceToken string) (*Order, error)
	GetOrder(ctx context.Context, userID uint, orderID uint, isAdmin bool) (*Order, error)
	ListOrders(ctx context.Context, userID uint) ([]*Order, error)
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
	gateway  payment.Gateway
}

func NewService(repo Repository, cartRepo cart.Repository, gateway payment.Gateway) Service {
	return &service{repo: repo, cartRepo: cartRepo, gateway: gateway}
}

// Checkout recomputes the total from the stored cart, never from anything
// the client supplies, charges the gateway, then persists the order
// snapshot and clears the cart in one transaction. The charge itself is
// not covered by that transaction: a persistence failure after a
// successful charge leaves a paid, order-less state.
// TODO: reconcile charged-but-unpersisted checkouts (needs a recovery job
// keyed on charge ids).
func (s *service) Checkout(ctx context.Context, userID uint, sourceToken string) (*Order, error) {
	log := logger.FromCtx(ctx).With(zap.Uint("user_id", userID))

	rows, err := s.cartRepo.GetUserCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, cart.ErrCartEmpty
	}

	total := 0
	for _, row := range rows {
		total += row.Item.Price * row.Quantity
	}

	log.Info("charging checkout total",
		zap.Int("total", total),
		zap.Int("cart_rows", len(rows)),
	)

	charge, err := s.gateway.CreateCharge(ctx, int64(total), sourceToken,
		fmt.Sprintf("Order for user %d", userID))
	if err != nil {
		return nil, err
	}

	o := &Order{
		UserID:   userID,
		Total:    total,
		ChargeID: charge.ID,
		Items:    make([]OrderItem, 0, len(rows)),
	}
	for _, row := range rows {
		o.Items = append(o.Items, OrderItem{
			Title:       row.Item.Title,
			Description: row.Item.Description,
			Price:       row.Item.Price,
			Image:       row.Item.Image,
			LargeImage:  row.Item.LargeImage,
			Quantity:    row.Quantity,
		})
	}

	created, err := s.repo.CreateOrderTx(ctx, o)
	if err != nil {
		log.Error("order persistence failed after successful charge",
			zap.String("charge_id", charge.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return created, nil
}

// GetOrder enforces that only the owner or an admin may read an order.
func (s *service) GetOrder(ctx context.Context, userID uint, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID && !isAdmin {
		logger.FromCtx(ctx).Warn("order ownership check failed",
			zap.Uint("order_id", orderID),
			zap.Uint("owner_id", o.UserID),
			zap.Uint("caller_id", userID),
		)
		return nil, ErrNotOrderOwner
	}

	return o, nil
}

func (s *service) ListOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}
