package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/api/metrics"
	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// CouponService manages discount codes and the expiry sweep.
type CouponService struct {
	repo ports.CouponRepository
	log  zerolog.Logger
}

func NewCouponService(repo ports.CouponRepository, log zerolog.Logger) *CouponService {
	return &CouponService{repo: repo, log: log}
}

func (s *CouponService) List(ctx context.Context) ([]*domain.Coupon, error) {
	return s.repo.List(ctx)
}

func (s *CouponService) Get(ctx context.Context, id string) (*domain.Coupon, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CouponService) Create(ctx context.Context, in ports.UpsertCouponInput) (*domain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if existing, err := s.repo.FindByCode(ctx, code); err == nil && existing != nil {
		return nil, domain.ErrCouponCodeTaken
	} else if err != nil && !errors.Is(err, domain.ErrCouponNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Coupon{
		ID:         uuid.NewString(),
		Code:       code,
		Type:       domain.CouponType(in.Type),
		Amount:     in.Amount,
		ActiveFrom: in.ActiveFrom,
		ExpireAt:   in.ExpireAt,
		IsActive:   in.ExpireAt.IsZero() || now.Before(in.ExpireAt),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, c); err != nil {
		s.log.Error().Err(err).Str("code", code).Msg("failed to create coupon")
		return nil, err
	}
	return c, nil
}

func (s *CouponService) Update(ctx context.Context, id string, in ports.UpsertCouponInput) (*domain.Coupon, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	c.Type = domain.CouponType(in.Type)
	c.Amount = in.Amount
	c.ActiveFrom = in.ActiveFrom
	c.ExpireAt = in.ExpireAt
	c.IsActive = !c.Expired(time.Now().UTC())
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SweepExpired deactivates every coupon whose window closed. Runs on a cron
// schedule and is safe to trigger ad hoc.
func (s *CouponService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("coupon expiry sweep failed")
		return 0, err
	}
	if n > 0 {
		metrics.CouponsExpiredTotal.Add(float64(n))
		s.log.Info().Int64("expired", n).Msg("coupon expiry sweep completed")
	}
	return n, nil
}
