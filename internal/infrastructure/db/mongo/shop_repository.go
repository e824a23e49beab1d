package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

const collectionShops = "shops"

type ShopRepository struct {
	col *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{col: db.Collection(collectionShops)}
}

func (r *ShopRepository) List(ctx context.Context) ([]*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shops []*domain.Shop
	if err := cursor.All(ctx, &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *ShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ShopRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Shop, error) {
	return r.findOne(ctx, bson.M{"owner_id": ownerID})
}

func (r *ShopRepository) FindBySlug(ctx context.Context, slug string) (*domain.Shop, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ShopRepository) findOne(ctx context.Context, filter bson.M) (*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var shop domain.Shop
	err := r.col.FindOne(ctx, filter).Decode(&shop)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShopNotFound
		}
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepository) Insert(ctx context.Context, shop *domain.Shop) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, shop)
	return err
}

func (r *ShopRepository) Update(ctx context.Context, shop *domain.Shop) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": shop.ID}, shop)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

func (r *ShopRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

// EnsureIndexes creates the owner and slug indexes.
func (r *ShopRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
