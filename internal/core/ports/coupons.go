package ports

import (
	"context"
	"time"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// UpsertCouponInput carries the writable coupon fields.
type UpsertCouponInput struct {
	Code       string    `json:"code" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=fixed percentage free_shipping"`
	Amount     float64   `json:"amount" validate:"gte=0"`
	ActiveFrom time.Time `json:"active_from"`
	ExpireAt   time.Time `json:"expire_at"`
}

// CouponRepository defines persistence operations for coupons.
type CouponRepository interface {
	List(ctx context.Context) ([]*domain.Coupon, error)
	FindByID(ctx context.Context, id string) (*domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (*domain.Coupon, error)
	Insert(ctx context.Context, c *domain.Coupon) error
	Update(ctx context.Context, c *domain.Coupon) error
	Delete(ctx context.Context, id string) error
	// DeactivateExpired flips is_active off for every coupon whose window
	// closed before now. Returns the number of coupons touched.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// CouponService exposes coupon management plus the expiry sweep.
type CouponService interface {
	List(ctx context.Context) ([]*domain.Coupon, error)
	Get(ctx context.Context, id string) (*domain.Coupon, error)
	Create(ctx context.Context, in UpsertCouponInput) (*domain.Coupon, error)
	Update(ctx context.Context, id string, in UpsertCouponInput) (*domain.Coupon, error)
	Delete(ctx context.Context, id string) error
	SweepExpired(ctx context.Context) (int64, error)
}
