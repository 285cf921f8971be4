package cart

import (
	"context"
	"testing"

	"storefront-be/internal/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Upsert(ctx context.Context, userID, itemID uint) (*CartItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) GetUserCart(ctx context.Context, userID uint) ([]*CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*CartItem), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, params item.CreateItemParams) (*item.Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, params item.UpdateItemParams) (*item.Item, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uint) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, filter *item.ListFilter, sort *item.ListSort, limit, page *int32) ([]*item.Item, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.Item), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context, filter *item.ListFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func TestService_AddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("UpsertsRow", func(t *testing.T) {
		repo := new(MockRepository)
		itemRepo := new(MockItemRepository)
		svc := NewService(repo, itemRepo)

		itemRepo.On("GetByID", ctx, uint(7)).Return(&item.Item{ID: 7}, nil)
		repo.On("Upsert", ctx, uint(1), uint(7)).
			Return(&CartItem{ID: 10, UserID: 1, ItemID: 7, Quantity: 1}, nil)

		c, err := svc.AddToCart(ctx, 1, 7)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Quantity)
		repo.AssertExpectations(t)
	})

	t.Run("UnknownItem", func(t *testing.T) {
		repo := new(MockRepository)
		itemRepo := new(MockItemRepository)
		svc := NewService(repo, itemRepo)

		itemRepo.On("GetByID", ctx, uint(99)).Return(nil, item.ErrItemNotFound)

		_, err := svc.AddToCart(ctx, 1, 99)
		assert.ErrorIs(t, err, item.ErrItemNotFound)
		repo.AssertNotCalled(t, "Upsert")
	})
}

func TestService_RemoveFromCart(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerCanRemove", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockItemRepository))

		repo.On("GetByID", ctx, uint(10)).
			Return(&CartItem{ID: 10, UserID: 1, ItemID: 7, Quantity: 2}, nil)
		repo.On("Delete", ctx, uint(10)).Return(nil)

		removed, err := svc.RemoveFromCart(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, uint(10), removed.ID)
	})

	t.Run("ForeignRowRejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockItemRepository))

		repo.On("GetByID", ctx, uint(10)).
			Return(&CartItem{ID: 10, UserID: 2, ItemID: 7, Quantity: 2}, nil)

		_, err := svc.RemoveFromCart(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrNotCartOwner)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("MissingRow", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockItemRepository))

		repo.On("GetByID", ctx, uint(99)).Return(nil, ErrCartItemNotFound)

		_, err := svc.RemoveFromCart(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}
