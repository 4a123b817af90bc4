package repository

import (
	"cinereview/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MaxListLimit caps every ListRecent call regardless of what the caller asks for.
const MaxListLimit = 10

type Repository struct {
	Review ReviewRepository
}

// NewRepository builds the Postgres-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewReviewRepository(db, log),
	}
}

// NewMongoRepository builds the MongoDB-backed repositories.
func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		Review: NewMongoReviewRepository(db, log),
	}
}

// clampLimit bounds limit to [1, MaxListLimit].
func clampLimit(limit int) int {
	return min(max(limit, 1), MaxListLimit)
}
