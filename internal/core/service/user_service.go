package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

var ErrUnknownRole = errors.New("unknown role")

// UserService covers the admin user screens: listing accounts and assigning
// roles.
type UserService struct {
	repo  ports.AuthRepository
	store ports.SessionStore
	log   zerolog.Logger
}

func NewUserService(repo ports.AuthRepository, store ports.SessionStore, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, store: store, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// AssignRole sets a user's role. Unlike session reads, assignment is a
// mutation and rejects values outside the role set instead of degrading.
func (s *UserService) AssignRole(ctx context.Context, id, role string) (*domain.User, error) {
	normalized := domain.NormalizeRole(role, "")
	if normalized == "" {
		return nil, ErrUnknownRole
	}

	if err := s.repo.UpdateRole(ctx, id, normalized); err != nil {
		return nil, err
	}

	// Drop any live session so the stale role cannot be read back.
	if err := s.store.Clear(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("failed to clear session after role change")
	}

	s.log.Info().Str("user_id", id).Str("role", string(normalized)).Msg("role assigned")
	return s.repo.FindByID(ctx, id)
}
