package domain

import (
	"errors"
	"strings"
	"time"
)

// OrderStatus is the normalized lifecycle state of an order. The remote
// fulfilment system owns the raw value; anything outside the known set is
// bucketed as StatusOther rather than rejected.
type OrderStatus string

const (
	OrderPending         OrderStatus = "PENDING"
	OrderProcessing      OrderStatus = "PROCESSING"
	OrderAtLocalFacility OrderStatus = "AT_LOCAL_FACILITY"
	OrderOutForDelivery  OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderPending:         {},
	OrderProcessing:      {},
	OrderAtLocalFacility: {},
	OrderOutForDelivery:  {},
	OrderDelivered:       {},
	OrderCancelled:       {},
}

// StatusOther is the fallback bucket for raw status values outside a record
// type's known enumeration. Rows carrying it only surface under the "all"
// filter, never under a specific status.
const StatusOther = "OTHER"

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidStatus = errors.New("invalid status value")

// NormalizeOrderStatus upper-cases raw and maps it into the known order
// status set, degrading to StatusOther for unknown values. Total; never errors.
func NormalizeOrderStatus(raw string) string {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownOrderStatuses[s]; ok {
		return string(s)
	}
	return StatusOther
}

// ValidOrderStatus reports whether raw (case-insensitive) names a known
// order status. Mutations use this; reads never do.
func ValidOrderStatus(raw string) bool {
	_, ok := knownOrderStatuses[OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))]
	return ok
}

// Customer carries the name parts and contact of the buyer as the remote
// system reported them. Any field may be empty.
type Customer struct {
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`
	Email     string `json:"email" bson:"email"`
	Phone     string `json:"phone" bson:"phone"`
}

// Order is a read-mostly mirror of a remote order row.
type Order struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	TrackingNumber string    `json:"tracking_number" bson:"tracking_number"`
	ShopID         string    `json:"shop_id" bson:"shop_id"`
	Customer       Customer  `json:"customer" bson:"customer"`
	Total          float64   `json:"total" bson:"total"`
	RawStatus      string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
