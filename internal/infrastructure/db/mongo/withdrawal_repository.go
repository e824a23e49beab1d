package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopgrid/admin-api/internal/core/domain"
)

const collectionWithdrawals = "withdrawals"

type WithdrawalRepository struct {
	col *mongo.Collection
}

func NewWithdrawalRepository(db *mongo.Database) *WithdrawalRepository {
	return &WithdrawalRepository{col: db.Collection(collectionWithdrawals)}
}

func (r *WithdrawalRepository) ListAll(ctx context.Context, shopID string) ([]*domain.Withdrawal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if shopID != "" {
		filter["shop_id"] = shopID
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var withdrawals []*domain.Withdrawal
	if err := cursor.All(ctx, &withdrawals); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Withdrawal
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *domain.Withdrawal) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, w)
	return err
}

func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id, status, note string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	if note != "" {
		set["note"] = note
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrWithdrawalNotFound
	}
	return nil
}

// EnsureIndexes creates the shop scope index.
func (r *WithdrawalRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "shop_id", Value: 1}},
	})
	return err
}
