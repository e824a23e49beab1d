package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

// ShopService manages vendor storefronts.
type ShopService struct {
	repo  ports.ShopRepository
	users ports.AuthRepository
	log   zerolog.Logger
}

func NewShopService(repo ports.ShopRepository, users ports.AuthRepository, log zerolog.Logger) *ShopService {
	return &ShopService{repo: repo, users: users, log: log}
}

func (s *ShopService) List(ctx context.Context) ([]*domain.Shop, error) {
	return s.repo.List(ctx)
}

func (s *ShopService) Get(ctx context.Context, id string) (*domain.Shop, error) {
	return s.repo.FindByID(ctx, id)
}

// Create opens a shop for the acting vendor. One shop per owner; a second
// create returns the existing shop's slug conflict.
func (s *ShopService) Create(ctx context.Context, actor domain.SessionIdentity, in ports.UpsertShopInput) (*domain.Shop, error) {
	if actor.Role != domain.RoleVendor && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	slug := slugify(in.Name)
	if existing, err := s.repo.FindBySlug(ctx, slug); err == nil && existing != nil {
		return nil, domain.ErrSlugTaken
	} else if err != nil && !errors.Is(err, domain.ErrShopNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	shop := &domain.Shop{
		ID:          uuid.NewString(),
		OwnerID:     actor.UserID,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		IsActive:    false, // admin activates after review
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, shop); err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("failed to create shop")
		return nil, err
	}

	// Link the account to its shop so freshly minted tokens carry the
	// shop_id claim. The session picks the link up on its next sync.
	if err := s.users.SetShopID(ctx, actor.UserID, shop.ID); err != nil {
		s.log.Error().Err(err).Str("shop_id", shop.ID).Str("owner_id", actor.UserID).Msg("failed to link shop owner")
		return nil, err
	}

	s.log.Info().Str("shop_id", shop.ID).Str("owner_id", actor.UserID).Msg("shop created")
	return shop, nil
}

func (s *ShopService) Update(ctx context.Context, actor domain.SessionIdentity, id string, in ports.UpsertShopInput) (*domain.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && shop.OwnerID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	shop.Name = in.Name
	shop.Description = in.Description
	shop.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.log.Info().Str("shop_id", id).Bool("active", active).Msg("shop activation changed")
	return nil
}
