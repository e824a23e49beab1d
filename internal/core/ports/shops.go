package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// UpsertShopInput carries the writable shop fields.
type UpsertShopInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	List(ctx context.Context) ([]*domain.Shop, error)
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Shop, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Shop, error)
	Insert(ctx context.Context, shop *domain.Shop) error
	Update(ctx context.Context, shop *domain.Shop) error
	SetActive(ctx context.Context, id string, active bool) error
}

// ShopService exposes shop management operations.
type ShopService interface {
	List(ctx context.Context) ([]*domain.Shop, error)
	Get(ctx context.Context, id string) (*domain.Shop, error)
	Create(ctx context.Context, actor domain.SessionIdentity, in UpsertShopInput) (*domain.Shop, error)
	Update(ctx context.Context, actor domain.SessionIdentity, id string, in UpsertShopInput) (*domain.Shop, error)
	SetActive(ctx context.Context, id string, active bool) error
}
