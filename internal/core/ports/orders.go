package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
)

// OrderRepository defines persistence operations for orders. ListAll applies
// only the coarse shop scope; the service never assumes the rows come back
// filtered or sorted beyond that.
type OrderRepository interface {
	ListAll(ctx context.Context, shopID string) ([]*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// OrderService exposes the order table operations.
type OrderService interface {
	List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error)
	Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, actor domain.SessionIdentity, id, status string) (*domain.Order, error)
}
