package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/api/metrics"
	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

const collectionWithdrawals = "withdrawals"

// WithdrawalService derives the withdrawal table views and handles vendor
// payout requests.
type WithdrawalService struct {
	repo  ports.WithdrawalRepository
	shops ports.ShopRepository
	snaps *listing.Snapshots
	cache ports.ListCache
	log   zerolog.Logger
}

func NewWithdrawalService(repo ports.WithdrawalRepository, shops ports.ShopRepository, snaps *listing.Snapshots, cache ports.ListCache, log zerolog.Logger) *WithdrawalService {
	if snaps == nil {
		snaps = listing.NewSnapshots()
	}
	return &WithdrawalService{repo: repo, shops: shops, snaps: snaps, cache: cache, log: log}
}

func decorateWithdrawal(w *domain.Withdrawal) listing.Row {
	if w == nil {
		return listing.Row{Status: domain.StatusOther}
	}
	var created int64
	if !w.CreatedAt.IsZero() {
		created = w.CreatedAt.Unix()
	}
	return listing.Row{
		ID:          w.ID,
		DisplayName: listing.JoinName(w.ShopName),
		Contact:     w.PaymentMethod,
		Status:      domain.NormalizeWithdrawalStatus(w.RawStatus),
		CreatedAt:   created,
		Total:       w.Amount,
	}
}

func (s *WithdrawalService) List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error) {
	start := time.Now()
	defer func() {
		metrics.ListDerivationDuration.WithLabelValues(collectionWithdrawals).Observe(time.Since(start).Seconds())
	}()

	if p.Status == "" {
		p.Status = listing.StatusAll
	}

	if vendorWithoutShop(actor) {
		return emptyPage(), nil
	}
	scope := shopScope(actor)
	fp := listing.Fingerprint(collectionWithdrawals, scope, p)

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
		metrics.ListDerivationsTotal.WithLabelValues(collectionWithdrawals).Inc()

		seq := s.snaps.Begin()
		withdrawals, err := s.repo.ListAll(ctx, scope)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list withdrawals")
			return nil, err
		}
		rows := make([]listing.Row, 0, len(withdrawals))
		for _, w := range withdrawals {
			rows = append(rows, decorateWithdrawal(w))
		}
		ordered = listing.Order(rows, p.Query, p.Status, p.Sort)
		if !s.snaps.Store(fp, seq, ordered) {
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

func (s *WithdrawalService) Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Withdrawal, error) {
	if vendorWithoutShop(actor) {
		return nil, domain.ErrWithdrawalNotFound
	}
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope := shopScope(actor); scope != "" && w.ShopID != scope {
		return nil, domain.ErrWithdrawalNotFound
	}
	return w, nil
}

// Create records a vendor's payout request in PENDING state. The balance
// check and actual settlement happen remotely.
func (s *WithdrawalService) Create(ctx context.Context, actor domain.SessionIdentity, in ports.CreateWithdrawalInput) (*domain.Withdrawal, error) {
	if actor.Role != domain.RoleVendor || actor.ShopID == "" {
		return nil, domain.ErrForbidden
	}

	shop, err := s.shops.FindByID(ctx, actor.ShopID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	w := &domain.Withdrawal{
		ID:            uuid.NewString(),
		ShopID:        shop.ID,
		ShopName:      shop.Name,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Details:       in.Details,
		Note:          in.Note,
		RawStatus:     string(domain.WithdrawalPending),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		s.log.Error().Err(err).Str("shop_id", shop.ID).Msg("failed to create withdrawal")
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("withdrawal_id", w.ID).Str("shop_id", shop.ID).Float64("amount", w.Amount).Msg("withdrawal requested")
	return w, nil
}

// UpdateStatus moves a withdrawal to a known status (admin workflow).
func (s *WithdrawalService) UpdateStatus(ctx context.Context, actor domain.SessionIdentity, id, status, note string) (*domain.Withdrawal, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidWithdrawalStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.NormalizeWithdrawalStatus(status), note); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("withdrawal_id", id).Str("status", status).Msg("withdrawal status updated")
	return s.repo.FindByID(ctx, id)
}

func (s *WithdrawalService) invalidate(ctx context.Context) {
	s.snaps.Invalidate(collectionWithdrawals)
	if s.cache != nil {
		s.cache.Invalidate(ctx, collectionWithdrawals)
	}
}
