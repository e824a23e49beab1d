package domain

import (
	"errors"
	"time"
)

var ErrCouponNotFound = errors.New("coupon not found")
var ErrCouponCodeTaken = errors.New("coupon code already in use")

// CouponType selects how Amount is applied at checkout (remotely).
type CouponType string

const (
	CouponFixed      CouponType = "fixed"
	CouponPercentage CouponType = "percentage"
	CouponFreeShip   CouponType = "free_shipping"
)

// Coupon is a discount code with an active window. The sweeper flips
// IsActive off once ExpireAt passes; redemption math happens remotely.
type Coupon struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Code       string     `json:"code" bson:"code"`
	Type       CouponType `json:"type" bson:"type"`
	Amount     float64    `json:"amount" bson:"amount"`
	ActiveFrom time.Time  `json:"active_from" bson:"active_from"`
	ExpireAt   time.Time  `json:"expire_at" bson:"expire_at"`
	IsActive   bool       `json:"is_active" bson:"is_active"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updated_at"`
}

// Expired reports whether the coupon's window has closed at now.
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpireAt.IsZero() && now.After(c.ExpireAt)
}
