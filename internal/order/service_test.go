package order

import (
	"context"
	"errors"
	"testing"

	"storefront-be/internal/cart"
	"storefront-be/internal/item"
	"storefront-be/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrderTx(ctx context.Context, o *Order) (*Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Upsert(ctx context.Context, userID, itemID uint) (*cart.CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetByID(ctx context.Context, id uint) (*cart.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCartRepository) GetUserCart(ctx context.Context, userID uint) ([]*cart.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CartItem), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCharge(ctx context.Context, amount int64, sourceToken, description string) (*payment.Charge, error) {
	args := m.Called(ctx, amount, sourceToken, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Charge), args.Error(1)
}

func testCart() []*cart.CartItem {
	return []*cart.CartItem{
		{
			ID: 10, UserID: 1, ItemID: 7, Quantity: 2,
			Item: &item.Item{ID: 7, Title: "Sunglasses", Description: "Nice shades", Price: 4999},
		},
		{
			ID: 11, UserID: 1, ItemID: 8, Quantity: 1,
			Item: &item.Item{ID: 8, Title: "Hat", Description: "Warm hat", Price: 1999},
		},
	}
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("ChargesServerSideTotalAndSnapshotsCart", func(t *testing.T) {
		repo := new(MockRepository)
		cartRepo := new(MockCartRepository)
		gateway := new(MockGateway)
		svc := NewService(repo, cartRepo, gateway)

		cartRepo.On("GetUserCart", ctx, uint(1)).Return(testCart(), nil)

		// 2*4999 + 1*1999, regardless of anything the client sent
		gateway.On("CreateCharge", ctx, int64(11997), "tok_visa", mock.AnythingOfType("string")).
			Return(&payment.Charge{ID: "ch_123", Amount: 11997}, nil)

		repo.On("CreateOrderTx", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*Order)
				assert.Equal(t, uint(1), o.UserID)
				assert.Equal(t, 11997, o.Total)
				assert.Equal(t, "ch_123", o.ChargeID)
				require.Len(t, o.Items, 2)
				assert.Equal(t, "Sunglasses", o.Items[0].Title)
				assert.Equal(t, 4999, o.Items[0].Price)
				assert.Equal(t, 2, o.Items[0].Quantity)
			}).
			Return(&Order{ID: 5, UserID: 1, Total: 11997, ChargeID: "ch_123"}, nil)

		o, err := svc.Checkout(ctx, 1, "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, uint(5), o.ID)
		repo.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		repo := new(MockRepository)
		cartRepo := new(MockCartRepository)
		gateway := new(MockGateway)
		svc := NewService(repo, cartRepo, gateway)

		cartRepo.On("GetUserCart", ctx, uint(1)).Return([]*cart.CartItem{}, nil)

		_, err := svc.Checkout(ctx, 1, "tok_visa")
		assert.ErrorIs(t, err, cart.ErrCartEmpty)
		gateway.AssertNotCalled(t, "CreateCharge")
	})

	t.Run("ChargeFailureSkipsPersistence", func(t *testing.T) {
		repo := new(MockRepository)
		cartRepo := new(MockCartRepository)
		gateway := new(MockGateway)
		svc := NewService(repo, cartRepo, gateway)

		cartRepo.On("GetUserCart", ctx, uint(1)).Return(testCart(), nil)
		gateway.On("CreateCharge", ctx, int64(11997), "tok_declined", mock.Anything).
			Return(nil, errors.New("card declined"))

		_, err := svc.Checkout(ctx, 1, "tok_declined")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "CreateOrderTx")
	})

	t.Run("PersistenceFailureSurfacesAfterCharge", func(t *testing.T) {
		repo := new(MockRepository)
		cartRepo := new(MockCartRepository)
		gateway := new(MockGateway)
		svc := NewService(repo, cartRepo, gateway)

		cartRepo.On("GetUserCart", ctx, uint(1)).Return(testCart(), nil)
		gateway.On("CreateCharge", ctx, int64(11997), "tok_visa", mock.Anything).
			Return(&payment.Charge{ID: "ch_123", Amount: 11997}, nil)
		repo.On("CreateOrderTx", ctx, mock.Anything).
			Return(nil, errors.New("db down"))

		_, err := svc.Checkout(ctx, 1, "tok_visa")
		assert.Error(t, err)
	})
}

func TestService_GetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerCanRead", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCartRepository), new(MockGateway))

		repo.On("GetByID", ctx, uint(5)).Return(&Order{ID: 5, UserID: 1}, nil)

		o, err := svc.GetOrder(ctx, 1, 5, false)
		require.NoError(t, err)
		assert.Equal(t, uint(5), o.ID)
	})

	t.Run("AdminCanReadForeignOrder", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCartRepository), new(MockGateway))

		repo.On("GetByID", ctx, uint(5)).Return(&Order{ID: 5, UserID: 2}, nil)

		_, err := svc.GetOrder(ctx, 1, 5, true)
		assert.NoError(t, err)
	})

	t.Run("StrangerRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCartRepository), new(MockGateway))

		repo.On("GetByID", ctx, uint(5)).Return(&Order{ID: 5, UserID: 2}, nil)

		_, err := svc.GetOrder(ctx, 1, 5, false)
		assert.ErrorIs(t, err, ErrNotOrderOwner)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockCartRepository), new(MockGateway))

		repo.On("GetByID", ctx, uint(99)).Return(nil, ErrOrderNotFound)

		_, err := svc.GetOrder(ctx, 1, 99, false)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_ListOrders(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockCartRepository), new(MockGateway))
	ctx := context.Background()

	repo.On("ListByUser", ctx, uint(1)).
		Return([]*Order{{ID: 5, UserID: 1}, {ID: 6, UserID: 1}}, nil)

	orders, err := svc.ListOrders(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
