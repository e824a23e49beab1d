package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

func TestShopCreate_LinksOwnerAccount(t *testing.T) {
	shops := &stubShopRepo{shops: map[string]*domain.Shop{}}
	users := newStubAuthRepo()
	users.users["v@example.com"] = &domain.User{ID: "u-vendor", Email: "v@example.com", Role: domain.RoleVendor}

	svc := NewShopService(shops, users, zerolog.Nop())

	shop, err := svc.Create(context.Background(), vendor(""), ports.UpsertShopInput{Name: "Vera's Shop"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if shop.IsActive {
		t.Fatal("new shops await admin activation")
	}
	// The owner's account must now carry the shop so subsequent tokens and
	// session syncs scope correctly.
	if got := users.users["v@example.com"].ShopID; got != shop.ID {
		t.Fatalf("owner link missing: user.ShopID = %q, want %q", got, shop.ID)
	}
}

func TestShopCreate_SlugConflict(t *testing.T) {
	shops := &stubShopRepo{shops: map[string]*domain.Shop{
		"s1": {ID: "s1", Name: "Taken", Slug: "taken"},
	}}
	users := newStubAuthRepo()
	svc := NewShopService(shops, users, zerolog.Nop())

	if _, err := svc.Create(context.Background(), vendor(""), ports.UpsertShopInput{Name: "Taken"}); !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected slug conflict, got %v", err)
	}
}

func TestShopCreate_CustomerForbidden(t *testing.T) {
	svc := NewShopService(&stubShopRepo{shops: map[string]*domain.Shop{}}, newStubAuthRepo(), zerolog.Nop())

	actor := domain.SessionIdentity{UserID: "u1", Role: domain.RoleCustomer}
	if _, err := svc.Create(context.Background(), actor, ports.UpsertShopInput{Name: "Nope"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestShopUpdate_OwnerOrAdminOnly(t *testing.T) {
	shops := &stubShopRepo{shops: map[string]*domain.Shop{
		"s1": {ID: "s1", OwnerID: "u-vendor", Name: "Mine", Slug: "mine"},
	}}
	svc := NewShopService(shops, newStubAuthRepo(), zerolog.Nop())

	stranger := domain.SessionIdentity{UserID: "u-other", Role: domain.RoleVendor, ShopID: "s2"}
	if _, err := svc.Update(context.Background(), stranger, "s1", ports.UpsertShopInput{Name: "Hijack"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	if _, err := svc.Update(context.Background(), vendor("s1"), "s1", ports.UpsertShopInput{Name: "Renamed"}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if shops.shops["s1"].Name != "Renamed" {
		t.Fatal("owner update not applied")
	}
}
