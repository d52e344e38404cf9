package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// EnsureIndexes creates the unique indexes the storage invariants rely on:
// one account per email, one cart per account, one product per name.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	repos := []interface {
		CreateIndexes(ctx context.Context) error
	}{
		&mongoAccountRepository{collection: db.Collection("accounts")},
		&mongoProductRepository{collection: db.Collection("products")},
		&mongoCartRepository{collection: db.Collection("carts")},
	}

	for _, r := range repos {
		if err := r.CreateIndexes(ctx); err != nil {
			return err
		}
	}

	return nil
}
