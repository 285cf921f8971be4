package graph

import (
	"context"

	"storefront-be/internal/graph/model"
	"storefront-be/internal/item"
	"storefront-be/internal/logger"
	"storefront-be/internal/permission"
	"storefront-be/internal/utils"

	"go.uber.org/zap"
)

func (r *mutationResolver) CreateItem(ctx context.Context, input model.CreateItemInput) (*model.Item, error) {
	log := logger.FromCtx(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	it, err := r.ItemSvc.Create(ctx, item.CreateItemParams{
		Title:       input.Title,
		Description: input.Description,
		Price:       int(input.Price),
		Image:       input.Image,
		LargeImage:  input.LargeImage,
		UserID:      userID,
	})
	if err != nil {
		log.Warn("create item failed", zap.Error(err))
		return nil, err
	}

	return mapItemToGraphQL(it), nil
}

// UpdateItem applies a partial field update by id.
// TODO: there is no ownership or permission guard here; any caller can
// update any item. Confirm the intended policy before adding one.
func (r *mutationResolver) UpdateItem(ctx context.Context, input model.UpdateItemInput) (*model.Item, error) {
	id, err := utils.ToUint(input.ID)
	if err != nil {
		return nil, item.ErrItemNotFound
	}

	var price *int
	if input.Price != nil {
		price = new(int)
		*price = int(*input.Price)
	}

	it, err := r.ItemSvc.Update(ctx, item.UpdateItemParams{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Price:       price,
	})
	if err != nil {
		return nil, err
	}

	return mapItemToGraphQL(it), nil
}

func (r *mutationResolver) DeleteItem(ctx context.Context, id string) (*model.Item, error) {
	log := logger.FromCtx(ctx)

	caller, err := r.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	itemID, err := utils.ToUint(id)
	if err != nil {
		return nil, item.ErrItemNotFound
	}

	it, err := r.ItemSvc.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	ownsItem := it.UserID == caller.ID
	hasDeletePermission := caller.HasPermission(permission.Admin, permission.ItemDelete)

	// TODO: this guard looks inverted — it blocks non-owners who DO hold
	// the delete permission and lets everyone else through. Confirm the
	// intended policy before changing it.
	if !ownsItem && hasDeletePermission {
		log.Warn("delete item rejected",
			zap.Uint("item_id", itemID),
			zap.Uint("caller_id", caller.ID),
		)
		return nil, ErrForbidden
	}

	if err := r.ItemSvc.Delete(ctx, itemID); err != nil {
		return nil, err
	}

	log.Info("item deleted",
		zap.Uint("item_id", itemID),
		zap.Uint("caller_id", caller.ID),
	)

	return mapItemToGraphQL(it), nil
}

func (r *queryResolver) Item(ctx context.Context, id string) (*model.Item, error) {
	itemID, err := utils.ToUint(id)
	if err != nil {
		return nil, item.ErrItemNotFound
	}

	it, err := r.ItemSvc.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return mapItemToGraphQL(it), nil
}

func (r *queryResolver) Items(
	ctx context.Context,
	filter *model.ItemFilterInput,
	sort *model.ItemSortInput,
	limit, page *int32,
) ([]*model.Item, error) {

	var f *item.ListFilter
	if filter != nil {
		f = &item.ListFilter{Search: filter.Search}
	}

	var s *item.ListSort
	if sort != nil {
		s = &item.ListSort{
			Field:     sort.Field,
			Direction: string(sort.Direction),
		}
	}

	items, err := r.ItemSvc.List(ctx, f, s, limit, page)
	if err != nil {
		return nil, err
	}

	out := make([]*model.Item, 0, len(items))
	for _, it := range items {
		out = append(out, mapItemToGraphQL(it))
	}

	return out, nil
}

func (r *queryResolver) ItemsCount(ctx context.Context, filter *model.ItemFilterInput) (int32, error) {
	var f *item.ListFilter
	if filter != nil {
		f = &item.ListFilter{Search: filter.Search}
	}

	count, err := r.ItemSvc.Count(ctx, f)
	return int32(count), err
}
