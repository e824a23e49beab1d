package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// SessionService owns identity resolution. Token claims are one origin, the
// persisted session record the other; Sync merges the two into the store and
// every read goes through the store, so feature code sees a single source.
type SessionService struct {
	store ports.SessionStore
	shops ports.ShopRepository
	log   zerolog.Logger
}

func NewSessionService(store ports.SessionStore, shops ports.ShopRepository, log zerolog.Logger) *SessionService {
	return &SessionService{store: store, shops: shops, log: log}
}

// Sync normalizes the claims and writes the merged identity into the store.
// Claim-origin fields win over whatever the store held; store fields only
// fill gaps the claims left empty. The returned identity is what the store
// now holds.
func (s *SessionService) Sync(ctx context.Context, claims ports.IdentityClaims) (*domain.SessionIdentity, error) {
	if claims.UserID == "" {
		return nil, domain.ErrIdentityUnresolved
	}

	identity := domain.SessionIdentity{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   domain.ResolveRole(claims.Role),
		ShopID: claims.ShopID,
	}

	if persisted, err := s.store.Get(ctx, claims.UserID); err == nil && persisted != nil {
		if identity.Name == "" {
			identity.Name = persisted.Name
		}
		if identity.Email == "" {
			identity.Email = persisted.Email
		}
		if identity.ShopID == "" {
			identity.ShopID = persisted.ShopID
		}
	}

	// A vendor whose token predates their shop carries no shop_id claim.
	// Resolve the link from the shop record so the scope catches up without
	// forcing a fresh login.
	if identity.Role == domain.RoleVendor && identity.ShopID == "" && s.shops != nil {
		if shop, err := s.shops.FindByOwner(ctx, identity.UserID); err == nil && shop != nil {
			identity.ShopID = shop.ID
		}
	}

	if err := s.store.Set(ctx, identity); err != nil {
		// A sync failure must not grant access with unsynced identity.
		s.log.Error().Err(err).Str("user_id", claims.UserID).Msg("session sync failed")
		return nil, domain.ErrIdentityUnresolved
	}

	return &identity, nil
}

// Current reads the persisted identity for userID.
func (s *SessionService) Current(ctx context.Context, userID string) (*domain.SessionIdentity, error) {
	if userID == "" {
		return nil, domain.ErrIdentityUnresolved
	}
	identity, err := s.store.Get(ctx, userID)
	if err != nil || identity == nil {
		return nil, domain.ErrIdentityUnresolved
	}
	return identity, nil
}

// Clear drops the persisted identity on logout.
func (s *SessionService) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	return s.store.Clear(ctx, userID)
}
