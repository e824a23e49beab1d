package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// IdentityClaims is the raw identity material lifted off a verified token.
// Role is deliberately untyped here: the session resolver is the only
// component permitted to interpret it.
type IdentityClaims struct {
	UserID string
	Name   string
	Email  string
	Role   any
	ShopID string
}

// SessionStore persists the authentication slice across requests. It is the
// single origin feature code reads identity from.
type SessionStore interface {
	Set(ctx context.Context, identity domain.SessionIdentity) error
	Get(ctx context.Context, userID string) (*domain.SessionIdentity, error)
	Clear(ctx context.Context, userID string) error
}

// SessionService resolves and syncs the current identity.
type SessionService interface {
	// Sync normalizes claims, merges them over any persisted record
	// (claim-origin fields win) and writes the result into the store.
	// The returned identity is the store's view, not the raw claims.
	Sync(ctx context.Context, claims IdentityClaims) (*domain.SessionIdentity, error)
	// Current reads the persisted identity; domain.ErrIdentityUnresolved
	// when none exists.
	Current(ctx context.Context, userID string) (*domain.SessionIdentity, error)
	Clear(ctx context.Context, userID string) error
}
