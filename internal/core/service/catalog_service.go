package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// CatalogService implements CRUD over the taxonomy resources. All six kinds
// share one shape and one repository; the kind is part of every lookup so
// slugs are unique per kind, not globally.
type CatalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) List(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error) {
	if !domain.ValidCatalogKind(kind) {
		return nil, domain.ErrUnknownCatalogKind
	}
	return s.repo.List(ctx, kind)
}

func (s *CatalogService) Get(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error) {
	if !domain.ValidCatalogKind(kind) {
		return nil, domain.ErrUnknownCatalogKind
	}
	return s.repo.FindByID(ctx, kind, id)
}

func (s *CatalogService) Create(ctx context.Context, kind domain.CatalogKind, in ports.UpsertCatalogInput) (*domain.CatalogItem, error) {
	if !domain.ValidCatalogKind(kind) {
		return nil, domain.ErrUnknownCatalogKind
	}

	slug := slugify(in.Name)
	if existing, err := s.repo.FindBySlug(ctx, kind, slug); err == nil && existing != nil {
		return nil, domain.ErrSlugTaken
	} else if err != nil && !errors.Is(err, domain.ErrCatalogItemNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.CatalogItem{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      in.Name,
		Slug:      slug,
		ParentID:  in.ParentID,
		Details:   in.Details,
		Icon:      in.Icon,
		Values:    in.Values,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Str("slug", slug).Msg("failed to create catalog item")
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Update(ctx context.Context, kind domain.CatalogKind, id string, in ports.UpsertCatalogInput) (*domain.CatalogItem, error) {
	item, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.ParentID = in.ParentID
	item.Details = in.Details
	item.Icon = in.Icon
	item.Values = in.Values
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Delete(ctx context.Context, kind domain.CatalogKind, id string) error {
	if !domain.ValidCatalogKind(kind) {
		return domain.ErrUnknownCatalogKind
	}
	return s.repo.Delete(ctx, kind, id)
}
