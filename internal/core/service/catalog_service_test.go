package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

type stubCatalogRepo struct {
	items []*domain.CatalogItem
}

func (r *stubCatalogRepo) List(_ context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error) {
	out := make([]*domain.CatalogItem, 0)
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error) {
	for _, it := range r.items {
		if it.Kind == kind && it.ID == id {
			return it, nil
		}
	}
	return nil, domain.ErrCatalogItemNotFound
}

func (r *stubCatalogRepo) FindBySlug(_ context.Context, kind domain.CatalogKind, slug string) (*domain.CatalogItem, error) {
	for _, it := range r.items {
		if it.Kind == kind && it.Slug == slug {
			return it, nil
		}
	}
	return nil, domain.ErrCatalogItemNotFound
}

func (r *stubCatalogRepo) Insert(_ context.Context, item *domain.CatalogItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *stubCatalogRepo) Update(_ context.Context, item *domain.CatalogItem) error {
	for i, it := range r.items {
		if it.Kind == item.Kind && it.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrCatalogItemNotFound
}

func (r *stubCatalogRepo) Delete(_ context.Context, kind domain.CatalogKind, id string) error {
	for i, it := range r.items {
		if it.Kind == kind && it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCatalogItemNotFound
}

func TestCatalogCreate_SlugDerivedFromName(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{}, zerolog.Nop())

	item, err := svc.Create(context.Background(), domain.KindCategory, ports.UpsertCatalogInput{Name: "Home & Garden"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Slug != "home-garden" {
		t.Fatalf("slug = %q, want home-garden", item.Slug)
	}
	if item.ID == "" {
		t.Fatal("a fresh id must be assigned")
	}
}

func TestCatalogCreate_SlugUniquePerKindNotGlobally(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), domain.KindCategory, ports.UpsertCatalogInput{Name: "Shoes"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.KindCategory, ports.UpsertCatalogInput{Name: "Shoes"}); !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("duplicate slug within a kind must be rejected, got %v", err)
	}
	// The same slug under another kind is fine.
	if _, err := svc.Create(context.Background(), domain.KindBrand, ports.UpsertCatalogInput{Name: "Shoes"}); err != nil {
		t.Fatalf("same slug under a different kind: %v", err)
	}
}

func TestCatalog_UnknownKindRejected(t *testing.T) {
	svc := NewCatalogService(&stubCatalogRepo{}, zerolog.Nop())

	if _, err := svc.List(context.Background(), "gadget"); !errors.Is(err, domain.ErrUnknownCatalogKind) {
		t.Fatalf("list: got %v", err)
	}
	if _, err := svc.Create(context.Background(), "gadget", ports.UpsertCatalogInput{Name: "X"}); !errors.Is(err, domain.ErrUnknownCatalogKind) {
		t.Fatalf("create: got %v", err)
	}
	if err := svc.Delete(context.Background(), "gadget", "id"); !errors.Is(err, domain.ErrUnknownCatalogKind) {
		t.Fatalf("delete: got %v", err)
	}
}

func TestCatalogUpdate_KeepsSlug(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewCatalogService(repo, zerolog.Nop())

	item, err := svc.Create(context.Background(), domain.KindTag, ports.UpsertCatalogInput{Name: "Summer Sale"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), domain.KindTag, item.ID, ports.UpsertCatalogInput{Name: "Winter Sale"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Winter Sale" {
		t.Fatalf("name not updated: %+v", updated)
	}
	// Slugs are permalinks; a rename must not move them.
	if updated.Slug != "summer-sale" {
		t.Fatalf("slug changed on update: %q", updated.Slug)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Home & Garden":  "home-garden",
		"  Shoes  ":      "shoes",
		"CAFÉ--Bar":      "café-bar",
		"!!!":            "item",
		"":               "item",
		"multi   spaces": "multi-spaces",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
