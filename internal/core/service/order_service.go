package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/api/metrics"
	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

const collectionOrders = "orders"

// OrderService derives the order table views. The repository hands back
// coarsely scoped rows; filtering, sorting and pagination all happen here so
// results stay deterministic regardless of what the store returns.
type OrderService struct {
	repo  ports.OrderRepository
	snaps *listing.Snapshots
	cache ports.ListCache
	log   zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, snaps *listing.Snapshots, cache ports.ListCache, log zerolog.Logger) *OrderService {
	if snaps == nil {
		snaps = listing.NewSnapshots()
	}
	return &OrderService{repo: repo, snaps: snaps, cache: cache, log: log}
}

// decorateOrder computes the derived row fields once, tolerating missing or
// malformed source fields.
func decorateOrder(o *domain.Order) listing.Row {
	if o == nil {
		return listing.Row{Status: domain.StatusOther}
	}
	id := o.TrackingNumber
	if id == "" {
		id = o.ID
	}
	var created int64
	if !o.CreatedAt.IsZero() {
		created = o.CreatedAt.Unix()
	}
	return listing.Row{
		ID:          id,
		DisplayName: listing.JoinName(o.Customer.FirstName, o.Customer.LastName),
		Contact:     o.Customer.Phone,
		Status:      domain.NormalizeOrderStatus(o.RawStatus),
		CreatedAt:   created,
		Total:       o.Total,
	}
}

func (s *OrderService) List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error) {
	start := time.Now()
	defer func() {
		metrics.ListDerivationDuration.WithLabelValues(collectionOrders).Observe(time.Since(start).Seconds())
	}()

	if p.Status == "" {
		p.Status = listing.StatusAll
	}

	if vendorWithoutShop(actor) {
		return emptyPage(), nil
	}
	scope := shopScope(actor)
	fp := listing.Fingerprint(collectionOrders, scope, p)

	if s.cache != nil {
		if page, ok := s.cache.GetPage(ctx, fp, p.Page); ok {
			return page, nil
		}
	}

	ordered, ok := s.snaps.Load(fp)
	if ok {
		metrics.ListSnapshotTotal.WithLabelValues("hit").Inc()
	} else {
		metrics.ListSnapshotTotal.WithLabelValues("miss").Inc()
		metrics.ListDerivationsTotal.WithLabelValues(collectionOrders).Inc()

		seq := s.snaps.Begin()
		orders, err := s.repo.ListAll(ctx, scope)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list orders")
			return nil, err
		}
		rows := make([]listing.Row, 0, len(orders))
		for _, o := range orders {
			rows = append(rows, decorateOrder(o))
		}
		ordered = listing.Order(rows, p.Query, p.Status, p.Sort)
		if !s.snaps.Store(fp, seq, ordered) {
			// A newer derivation landed first; serve its snapshot.
			if newer, ok := s.snaps.Load(fp); ok {
				ordered = newer
			}
		}
	}

	page := listing.Paginate(ordered, p.Page)
	if s.cache != nil {
		s.cache.SetPage(ctx, fp, &page)
	}
	return &page, nil
}

func (s *OrderService) Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Order, error) {
	if vendorWithoutShop(actor) {
		return nil, domain.ErrOrderNotFound
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Vendors only see their own shop's orders. A mismatch reads as not
	// found so cross-shop probing leaks nothing.
	if scope := shopScope(actor); scope != "" && order.ShopID != scope {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus moves an order to a known status. Unlike reads, mutations
// reject unknown values outright.
func (s *OrderService) UpdateStatus(ctx context.Context, actor domain.SessionIdentity, id, status string) (*domain.Order, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleSR {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.NormalizeOrderStatus(status)); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) invalidate(ctx context.Context) {
	s.snaps.Invalidate(collectionOrders)
	if s.cache != nil {
		s.cache.Invalidate(ctx, collectionOrders)
	}
}

// shopScope returns the coarse repository scope for an actor: vendors are
// pinned to their shop, every other role sees the full collection (their
// section access was already gated upstream).
func shopScope(actor domain.SessionIdentity) string {
	if actor.Role == domain.RoleVendor {
		return actor.ShopID
	}
	return ""
}

// vendorWithoutShop marks a vendor who has no shop yet: their lists are
// empty rather than unscoped.
func vendorWithoutShop(actor domain.SessionIdentity) bool {
	return actor.Role == domain.RoleVendor && actor.ShopID == ""
}

func emptyPage() *listing.Page {
	return &listing.Page{Data: []listing.Row{}, Total: 0, TotalPages: 1, Page: 1}
}
