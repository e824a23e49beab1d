package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
)

// CreateWithdrawalInput carries a vendor's payout request.
type CreateWithdrawalInput struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
	Details       string  `json:"details"`
	Note          string  `json:"note"`
}

// WithdrawalRepository defines persistence operations for payout requests.
type WithdrawalRepository interface {
	ListAll(ctx context.Context, shopID string) ([]*domain.Withdrawal, error)
	FindByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	Create(ctx context.Context, w *domain.Withdrawal) error
	UpdateStatus(ctx context.Context, id, status, note string) error
}

// WithdrawalService exposes the withdrawal table operations.
type WithdrawalService interface {
	List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error)
	Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Withdrawal, error)
	Create(ctx context.Context, actor domain.SessionIdentity, in CreateWithdrawalInput) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, actor domain.SessionIdentity, id, status, note string) (*domain.Withdrawal, error)
}
