package domain

import (
	"errors"
	"strings"
	"time"
)

// WithdrawalStatus is the normalized state of a shop payout request.
type WithdrawalStatus string

const (
	WithdrawalApproved   WithdrawalStatus = "APPROVED"
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalOnHold     WithdrawalStatus = "ON_HOLD"
	WithdrawalRejected   WithdrawalStatus = "REJECTED"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
)

var knownWithdrawalStatuses = map[WithdrawalStatus]struct{}{
	WithdrawalApproved:   {},
	WithdrawalPending:    {},
	WithdrawalOnHold:     {},
	WithdrawalRejected:   {},
	WithdrawalProcessing: {},
}

var ErrWithdrawalNotFound = errors.New("withdrawal not found")

// NormalizeWithdrawalStatus upper-cases raw and maps it into the known
// withdrawal status set, degrading to StatusOther. Total; never errors.
func NormalizeWithdrawalStatus(raw string) string {
	s := WithdrawalStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := knownWithdrawalStatuses[s]; ok {
		return string(s)
	}
	return StatusOther
}

// ValidWithdrawalStatus reports whether raw names a known withdrawal status.
func ValidWithdrawalStatus(raw string) bool {
	_, ok := knownWithdrawalStatuses[WithdrawalStatus(strings.ToUpper(strings.TrimSpace(raw)))]
	return ok
}

// Withdrawal is a shop payout request. Vendors create them; admins move them
// through the status set. The balance math behind Amount is settled remotely
// and only displayed here.
type Withdrawal struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	ShopID        string    `json:"shop_id" bson:"shop_id"`
	ShopName      string    `json:"shop_name" bson:"shop_name"`
	Amount        float64   `json:"amount" bson:"amount"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	Details       string    `json:"details,omitempty" bson:"details,omitempty"`
	Note          string    `json:"note,omitempty" bson:"note,omitempty"`
	RawStatus     string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
