package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// UpsertCatalogInput carries the writable fields of a taxonomy resource.
type UpsertCatalogInput struct {
	Name     string   `json:"name" validate:"required"`
	ParentID string   `json:"parent_id"`
	Details  string   `json:"details"`
	Icon     string   `json:"icon"`
	Values   []string `json:"values"`
}

// CatalogRepository defines persistence operations shared by the taxonomy
// resources (categories, brands, tags, attributes, terms, FAQs).
type CatalogRepository interface {
	List(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error)
	FindByID(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error)
	FindBySlug(ctx context.Context, kind domain.CatalogKind, slug string) (*domain.CatalogItem, error)
	Insert(ctx context.Context, item *domain.CatalogItem) error
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, kind domain.CatalogKind, id string) error
}

// CatalogService exposes CRUD over the taxonomy resources.
type CatalogService interface {
	List(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error)
	Get(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error)
	Create(ctx context.Context, kind domain.CatalogKind, in UpsertCatalogInput) (*domain.CatalogItem, error)
	Update(ctx context.Context, kind domain.CatalogKind, id string, in UpsertCatalogInput) (*domain.CatalogItem, error)
	Delete(ctx context.Context, kind domain.CatalogKind, id string) error
}
