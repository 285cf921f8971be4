package graph

import (
	"context"
	"testing"

	"storefront-be/internal/graph/model"
	"storefront-be/internal/item"
	"storefront-be/internal/permission"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMutation_CreateItem(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{ItemSvc: new(MockItemService)}}

		_, err := m.CreateItem(context.Background(), model.CreateItemInput{Title: "Hat"})
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("StampsCallerAsOwner", func(t *testing.T) {
		itemSvc := new(MockItemService)
		m := &mutationResolver{&Resolver{ItemSvc: itemSvc}}
		ctx := utils.SetUserContext(context.Background(), 3)

		itemSvc.On("Create", mock.Anything, item.CreateItemParams{
			Title:       "Sunglasses",
			Description: "Nice shades",
			Price:       4999,
			UserID:      3,
		}).Return(&item.Item{ID: 7, Title: "Sunglasses", Price: 4999, UserID: 3}, nil)

		it, err := m.CreateItem(ctx, model.CreateItemInput{
			Title:       "Sunglasses",
			Description: "Nice shades",
			Price:       4999,
		})
		require.NoError(t, err)
		assert.Equal(t, "7", it.ID)
		itemSvc.AssertExpectations(t)
	})
}

func TestMutation_UpdateItem(t *testing.T) {
	itemSvc := new(MockItemService)
	m := &mutationResolver{&Resolver{ItemSvc: itemSvc}}

	newPrice := 5999
	itemSvc.On("Update", mock.Anything, item.UpdateItemParams{
		ID:    7,
		Price: &newPrice,
	}).Return(&item.Item{ID: 7, Title: "Sunglasses", Price: 5999}, nil)

	inputPrice := int32(5999)
	// no session on the context on purpose, the operation takes any caller
	it, err := m.UpdateItem(context.Background(), model.UpdateItemInput{
		ID:    "7",
		Price: &inputPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(5999), it.Price)
}

func TestMutation_DeleteItem(t *testing.T) {
	withCaller := func(svc *MockItemService, perms ...permission.Permission) (*mutationResolver, context.Context) {
		userSvc := new(MockUserService)
		userSvc.On("GetByID", mock.Anything, uint(1)).
			Return(&user.User{ID: 1, Permissions: perms}, nil)
		m := &mutationResolver{&Resolver{UserSvc: userSvc, ItemSvc: svc}}
		return m, utils.SetUserContext(context.Background(), 1)
	}

	t.Run("Anonymous", func(t *testing.T) {
		m := &mutationResolver{&Resolver{ItemSvc: new(MockItemService)}}

		_, err := m.DeleteItem(context.Background(), "7")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("OwnerWithoutGrantDeletes", func(t *testing.T) {
		itemSvc := new(MockItemService)
		m, ctx := withCaller(itemSvc, permission.User)

		itemSvc.On("GetByID", mock.Anything, uint(7)).
			Return(&item.Item{ID: 7, Title: "Sunglasses", UserID: 1}, nil)
		itemSvc.On("Delete", mock.Anything, uint(7)).Return(nil)

		it, err := m.DeleteItem(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "7", it.ID)
	})

	t.Run("NonOwnerWithGrantRejected", func(t *testing.T) {
		itemSvc := new(MockItemService)
		m, ctx := withCaller(itemSvc, permission.ItemDelete)

		itemSvc.On("GetByID", mock.Anything, uint(7)).
			Return(&item.Item{ID: 7, Title: "Sunglasses", UserID: 2}, nil)

		_, err := m.DeleteItem(ctx, "7")
		assert.ErrorIs(t, err, ErrForbidden)
		itemSvc.AssertNotCalled(t, "Delete")
	})

	t.Run("NonOwnerWithoutGrantDeletes", func(t *testing.T) {
		itemSvc := new(MockItemService)
		m, ctx := withCaller(itemSvc, permission.User)

		itemSvc.On("GetByID", mock.Anything, uint(7)).
			Return(&item.Item{ID: 7, Title: "Sunglasses", UserID: 2}, nil)
		itemSvc.On("Delete", mock.Anything, uint(7)).Return(nil)

		_, err := m.DeleteItem(ctx, "7")
		assert.NoError(t, err)
	})

	t.Run("MissingItem", func(t *testing.T) {
		itemSvc := new(MockItemService)
		m, ctx := withCaller(itemSvc, permission.User)

		itemSvc.On("GetByID", mock.Anything, uint(99)).
			Return(nil, item.ErrItemNotFound)

		_, err := m.DeleteItem(ctx, "99")
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})
}

func TestQuery_Item(t *testing.T) {
	itemSvc := new(MockItemService)
	q := &queryResolver{&Resolver{ItemSvc: itemSvc}}

	t.Run("Found", func(t *testing.T) {
		itemSvc.On("GetByID", mock.Anything, uint(7)).
			Return(&item.Item{ID: 7, Title: "Sunglasses", Price: 4999}, nil)

		it, err := q.Item(context.Background(), "7")
		require.NoError(t, err)
		assert.Equal(t, "Sunglasses", it.Title)
	})

	t.Run("MalformedID", func(t *testing.T) {
		_, err := q.Item(context.Background(), "not-a-number")
		assert.ErrorIs(t, err, item.ErrItemNotFound)
	})
}

func TestQuery_Items(t *testing.T) {
	itemSvc := new(MockItemService)
	q := &queryResolver{&Resolver{ItemSvc: itemSvc}}

	search := "glasses"
	itemSvc.On("List", mock.Anything,
		&item.ListFilter{Search: &search},
		&item.ListSort{Field: "price", Direction: "ASC"},
		mock.Anything, mock.Anything).
		Return([]*item.Item{{ID: 7, Title: "Sunglasses"}}, nil)

	items, err := q.Items(context.Background(),
		&model.ItemFilterInput{Search: &search},
		&model.ItemSortInput{Field: "price", Direction: model.SortDirectionAsc},
		nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].ID)
}

func TestQuery_ItemsCount(t *testing.T) {
	itemSvc := new(MockItemService)
	q := &queryResolver{&Resolver{ItemSvc: itemSvc}}

	itemSvc.On("Count", mock.Anything, (*item.ListFilter)(nil)).Return(42, nil)

	count, err := q.ItemsCount(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(42), count)
}
