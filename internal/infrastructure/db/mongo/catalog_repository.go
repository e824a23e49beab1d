package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

const collectionCatalog = "catalog"

// CatalogRepository stores all taxonomy kinds in one collection,
// discriminated by the kind field.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionCatalog)}
}

func (r *CatalogRepository) List(ctx context.Context, kind domain.CatalogKind) ([]*domain.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"kind": kind})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.CatalogItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error) {
	return r.findOne(ctx, bson.M{"kind": kind, "_id": id})
}

func (r *CatalogRepository) FindBySlug(ctx context.Context, kind domain.CatalogKind, slug string) (*domain.CatalogItem, error) {
	return r.findOne(ctx, bson.M{"kind": kind, "slug": slug})
}

func (r *CatalogRepository) findOne(ctx context.Context, filter bson.M) (*domain.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.CatalogItem
	err := r.col.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatalogItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, item *domain.CatalogItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *CatalogRepository) Update(ctx context.Context, item *domain.CatalogItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID, "kind": item.Kind}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCatalogItemNotFound
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, kind domain.CatalogKind, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"kind": kind, "_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCatalogItemNotFound
	}
	return nil
}

// EnsureIndexes creates the per-kind slug index.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "kind", Value: 1}, {Key: "slug", Value: 1}},
	})
	return err
}
