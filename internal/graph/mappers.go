package graph

import (
	"fmt"
	"time"

	"storefront-be/internal/cart"
	"storefront-be/internal/graph/model"
	"storefront-be/internal/item"
	"storefront-be/internal/order"
	"storefront-be/internal/user"
)

func mapUserToGraphQL(u *user.User) *model.User {
	perms := make([]model.Permission, len(u.Permissions))
	for i, p := range u.Permissions {
		perms[i] = model.Permission(p)
	}

	return &model.User{
		ID:          fmt.Sprint(u.ID),
		Email:       u.Email,
		Name:        u.Name,
		Permissions: perms,
	}
}

func mapItemToGraphQL(it *item.Item) *model.Item {
	return &model.Item{
		ID:          fmt.Sprint(it.ID),
		Title:       it.Title,
		Description: it.Description,
		Price:       int32(it.Price),
		Image:       it.Image,
		LargeImage:  it.LargeImage,
		UserID:      fmt.Sprint(it.UserID),
		CreatedAt:   it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   it.UpdatedAt.Format(time.RFC3339),
	}
}

func mapCartItemToGraphQL(c *cart.CartItem) *model.CartItem {
	out := &model.CartItem{
		ID:        fmt.Sprint(c.ID),
		UserID:    fmt.Sprint(c.UserID),
		Quantity:  int32(c.Quantity),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Item != nil {
		out.Item = mapItemToGraphQL(c.Item)
	}
	return out
}

func mapOrderToGraphQL(o *order.Order) *model.Order {
	items := make([]*model.OrderItem, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, &model.OrderItem{
			ID:          fmt.Sprint(it.ID),
			Title:       it.Title,
			Description: it.Description,
			Price:       int32(it.Price),
			Image:       it.Image,
			LargeImage:  it.LargeImage,
			Quantity:    int32(it.Quantity),
		})
	}

	return &model.Order{
		ID:        fmt.Sprint(o.ID),
		UserID:    fmt.Sprint(o.UserID),
		Total:     int32(o.Total),
		Charge:    o.ChargeID,
		Items:     items,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
