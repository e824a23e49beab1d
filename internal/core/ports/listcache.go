package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/listing"
)

// ListCache is a read-through cache of derived list pages shared across
// instances. It may apply its own eviction policy; callers must stay correct
// when it returns nothing or stale-but-well-formed pages.
type ListCache interface {
	GetPage(ctx context.Context, fingerprint string, page int) (*listing.Page, bool)
	SetPage(ctx context.Context, fingerprint string, result *listing.Page)
	Invalidate(ctx context.Context, collection string)
}
