package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/shopgrid/admin-api/internal/infrastructure/db/mongo"
)

// ensureIndexes creates the lookup indexes every repository depends on.
// Index creation is idempotent; failures abort startup.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}

	for _, repo := range []indexer{
		mongodb.NewAuthRepository(db),
		mongodb.NewOrderRepository(db),
		mongodb.NewWithdrawalRepository(db),
		mongodb.NewProductRepository(db),
		mongodb.NewCatalogRepository(db),
		mongodb.NewShopRepository(db),
		mongodb.NewCouponRepository(db),
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
