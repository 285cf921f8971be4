package item

import (
	"context"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, params CreateItemParams) (*Item, error)
	Update(ctx context.Context, params UpdateItemParams) (*Item, error)
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context, filter *ListFilter, sort *ListSort, limit, page *int32) ([]*Item, error)
	Count(ctx context.Context, filter *ListFilter) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, params CreateItemParams) (*Item, error) {
	it, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("item created",
		zap.Uint("item_id", it.ID),
		zap.Uint("user_id", it.UserID),
	)
	return it, nil
}

func (s *service) Update(ctx context.Context, params UpdateItemParams) (*Item, error) {
	return s.repo.Update(ctx, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter *ListFilter, sort *ListSort, limit, page *int32) ([]*Item, error) {
	return s.repo.List(ctx, filter, sort, limit, page)
}

func (s *service) Count(ctx context.Context, filter *ListFilter) (int, error) {
	return s.repo.Count(ctx, filter)
}
