package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

type stubSessionStore struct {
	byUser map[string]domain.SessionIdentity
	setErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{byUser: make(map[string]domain.SessionIdentity)}
}

func (s *stubSessionStore) Set(_ context.Context, identity domain.SessionIdentity) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.byUser[identity.UserID] = identity
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, userID string) (*domain.SessionIdentity, error) {
	identity, ok := s.byUser[userID]
	if !ok {
		return nil, domain.ErrIdentityUnresolved
	}
	return &identity, nil
}

func (s *stubSessionStore) Clear(_ context.Context, userID string) error {
	delete(s.byUser, userID)
	return nil
}

func TestSync_ClaimFieldsWinOverPersisted(t *testing.T) {
	store := newStubSessionStore()
	store.byUser["u1"] = domain.SessionIdentity{
		UserID: "u1", Name: "Old Name", Email: "old@example.com", Role: domain.RoleVendor, ShopID: "shop-old",
	}
	svc := NewSessionService(store, nil, zerolog.Nop())

	got, err := svc.Sync(context.Background(), ports.IdentityClaims{
		UserID: "u1", Name: "New Name", Email: "new@example.com", Role: "admin", ShopID: "shop-new",
	})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Name != "New Name" || got.Email != "new@example.com" || got.ShopID != "shop-new" {
		t.Fatalf("claim fields must win: %+v", got)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("role should come from claims, got %q", got.Role)
	}
	if store.byUser["u1"].Name != "New Name" {
		t.Fatal("merged identity must be written back to the store")
	}
}

func TestSync_PersistedFieldsFillClaimGaps(t *testing.T) {
	store := newStubSessionStore()
	store.byUser["u1"] = domain.SessionIdentity{
		UserID: "u1", Name: "Kept", Email: "kept@example.com", Role: domain.RoleVendor, ShopID: "shop-1",
	}
	svc := NewSessionService(store, nil, zerolog.Nop())

	got, err := svc.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: "vendor"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Name != "Kept" || got.Email != "kept@example.com" || got.ShopID != "shop-1" {
		t.Fatalf("empty claim fields should be backfilled: %+v", got)
	}
}

func TestSync_UnknownRoleResolvesToDefault(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), nil, zerolog.Nop())

	got, err := svc.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: 42})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.Role != domain.RoleSR {
		t.Fatalf("non-string role should resolve to %q, got %q", domain.RoleSR, got.Role)
	}
}

func TestSync_VendorShopResolvedFromOwnerRecord(t *testing.T) {
	// A vendor token minted before the shop existed carries no shop_id
	// claim; the sync must pick the link up from the shop record.
	shops := &stubShopRepo{shops: map[string]*domain.Shop{
		"shop-1": {ID: "shop-1", OwnerID: "u1", Name: "Vera's Shop"},
	}}
	svc := NewSessionService(newStubSessionStore(), shops, zerolog.Nop())

	got, err := svc.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: "vendor"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.ShopID != "shop-1" {
		t.Fatalf("vendor shop not resolved from owner record, got %q", got.ShopID)
	}

	// Non-vendors never trigger the owner lookup.
	fresh := NewSessionService(newStubSessionStore(), shops, zerolog.Nop())
	got, err = fresh.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: "admin"})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got.ShopID != "" {
		t.Fatalf("admin must not pick up a shop scope, got %q", got.ShopID)
	}
}

func TestSync_StoreWriteFailureIsUnresolved(t *testing.T) {
	store := newStubSessionStore()
	store.setErr = errors.New("redis down")
	svc := NewSessionService(store, nil, zerolog.Nop())

	if _, err := svc.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: "admin"}); !errors.Is(err, domain.ErrIdentityUnresolved) {
		t.Fatalf("a failed sync must not hand out an identity, got %v", err)
	}
}

func TestSync_EmptyUserID(t *testing.T) {
	svc := NewSessionService(newStubSessionStore(), nil, zerolog.Nop())
	if _, err := svc.Sync(context.Background(), ports.IdentityClaims{}); !errors.Is(err, domain.ErrIdentityUnresolved) {
		t.Fatalf("expected unresolved, got %v", err)
	}
}

func TestCurrentAndClear(t *testing.T) {
	store := newStubSessionStore()
	svc := NewSessionService(store, nil, zerolog.Nop())

	if _, err := svc.Sync(context.Background(), ports.IdentityClaims{UserID: "u1", Role: "admin"}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if got, err := svc.Current(context.Background(), "u1"); err != nil || got.UserID != "u1" {
		t.Fatalf("current after sync: %+v, %v", got, err)
	}

	if err := svc.Clear(context.Background(), "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := svc.Current(context.Background(), "u1"); !errors.Is(err, domain.ErrIdentityUnresolved) {
		t.Fatalf("current after clear should be unresolved, got %v", err)
	}
}
