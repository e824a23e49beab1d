package ports

import (
	"context"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

// AuthRepository defines persistence operations for user accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	SetShopID(ctx context.Context, id, shopID string) error
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService exposes the admin user screens.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	AssignRole(ctx context.Context, id, role string) (*domain.User, error)
}
