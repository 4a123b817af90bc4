package database

import (
	"context"
	"fmt"
	"time"

	"cinereview/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects to MongoDB and returns the configured database handle.
// The caller disconnects through db.Client().
func InitMongo(ctx context.Context, config utils.StoreConfig) (*mongo.Database, error) {
	if config.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required for store driver %q", config.Driver)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(config.MongoURI).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return client.Database(config.MongoDB), nil
}
