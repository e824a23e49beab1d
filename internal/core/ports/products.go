package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
)

// UpsertProductInput carries the writable product fields.
type UpsertProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	SalePrice   float64 `json:"sale_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	ProductType string  `json:"product_type"`
	Status      string  `json:"status"`
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	ListAll(ctx context.Context, shopID string) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// ProductService exposes the product table operations.
type ProductService interface {
	List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error)
	Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Product, error)
	Create(ctx context.Context, actor domain.SessionIdentity, in UpsertProductInput) (*domain.Product, error)
	Update(ctx context.Context, actor domain.SessionIdentity, id string, in UpsertProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor domain.SessionIdentity, id string) error
}
