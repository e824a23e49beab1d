package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopgrid/admin-api/internal/api/metrics"
	"github.com/shopgrid/admin-api/internal/core/domain"
	"github.com/shopgrid/admin-api/internal/core/listing"
	"github.com/shopgrid/admin-api/internal/core/ports"
)

const collectionProducts = "products"

// ProductService derives the product table views and handles vendor CRUD.
type ProductService struct {
	repo  ports.ProductRepository
	snaps *listing.Snapshots
	cache ports.ListCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, snaps *listing.Snapshots, cache ports.ListCache, log zerolog.Logger) *ProductService {
	if snaps == nil {
		snaps = listing.NewSnapshots()
	}
	return &ProductService{repo: repo, snaps: snaps, cache: cache, log: log}
}

func decorateProduct(p *domain.Product) listing.Row {
	if p == nil {
		return listing.Row{Status: domain.StatusOther}
	}
	var created int64
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Unix()
	}
	total := p.Price
	if p.SalePrice > 0 {
		total = p.SalePrice
	}
	return listing.Row{
		ID:          p.ID,
		DisplayName: listing.JoinName(p.Name),
		Contact:     p.Slug,
		Status:      domain.NormalizeProductStatus(p.RawStatus),
		CreatedAt:   created,
		Total:       total,
	}
}

func (s *ProductService) List(ctx context.Context, actor domain.SessionIdentity, p listing.Params) (*listing.Page, error) {
	start := time.Now()
	defer func() {
		metrics.ListDerivationDuration.WithLabelValues(collectionProducts).Observe(time.Since(start).Seconds())
	}()

	if p.Status == "" {
		p.Status = listing.StatusAll
	}

	if vendorWithoutShop(actor) {
		return emptyPage(), nil
	}
	scope := shopScope(actor)
	fp := listing.Fingerprint(collectionProducts, scope, p)

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
		metrics.ListDerivationsTotal.WithLabelValues(collectionProducts).Inc()

		seq := s.snaps.Begin()
		products, err := s.repo.ListAll(ctx, scope)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to list products")
			return nil, err
		}
		rows := make([]listing.Row, 0, len(products))
		for _, product := range products {
			rows = append(rows, decorateProduct(product))
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

func (s *ProductService) Get(ctx context.Context, actor domain.SessionIdentity, id string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope := shopScope(actor); scope != "" && product.ShopID != scope {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, actor domain.SessionIdentity, in ports.UpsertProductInput) (*domain.Product, error) {
	shopID := actor.ShopID
	if actor.Role == domain.RoleVendor && shopID == "" {
		return nil, domain.ErrForbidden
	}

	slug, err := s.uniqueSlug(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	status := string(domain.ProductDraft)
	if in.Status != "" {
		if !domain.ValidProductStatus(in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		status = domain.NormalizeProductStatus(in.Status)
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        slug,
		ShopID:      shopID,
		Description: in.Description,
		Price:       in.Price,
		SalePrice:   in.SalePrice,
		Quantity:    in.Quantity,
		ProductType: in.ProductType,
		RawStatus:   status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("failed to create product")
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("product_id", product.ID).Str("shop_id", shopID).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, actor domain.SessionIdentity, id string, in ports.UpsertProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.SalePrice = in.SalePrice
	product.Quantity = in.Quantity
	if in.ProductType != "" {
		product.ProductType = in.ProductType
	}
	if in.Status != "" {
		if !domain.ValidProductStatus(in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		product.RawStatus = domain.NormalizeProductStatus(in.Status)
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor domain.SessionIdentity, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// uniqueSlug derives a slug from name, suffixing until no product claims it.
func (s *ProductService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	slug := base
	for i := 2; ; i++ {
		existing, err := s.repo.FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return slug, nil
			}
			return "", err
		}
		if existing == nil {
			return slug, nil
		}
		slug = base + "-" + itoa(i)
	}
}

func (s *ProductService) invalidate(ctx context.Context) {
	s.snaps.Invalidate(collectionProducts)
	if s.cache != nil {
		s.cache.Invalidate(ctx, collectionProducts)
	}
}
