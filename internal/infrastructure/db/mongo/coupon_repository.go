package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

const collectionCoupons = "coupons"

type CouponRepository struct {
	col *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{col: db.Collection(collectionCoupons)}
}

func (r *CouponRepository) List(ctx context.Context) ([]*domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []*domain.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id string) (*domain.Coupon, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return r.findOne(ctx, bson.M{"code": code})
}

func (r *CouponRepository) findOne(ctx context.Context, filter bson.M) (*domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Coupon
	err := r.col.FindOne(ctx, filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) Insert(ctx context.Context, c *domain.Coupon) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CouponRepository) Update(ctx context.Context, c *domain.Coupon) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCouponNotFound
	}
	return nil
}

// DeactivateExpired flips is_active off for every coupon whose window closed
// before now.
func (r *CouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"is_active": true, "expire_at": bson.M{"$lt": now, "$ne": time.Time{}}},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// EnsureIndexes creates the code index.
func (r *CouponRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "code", Value: 1}},
	})
	return err
}
