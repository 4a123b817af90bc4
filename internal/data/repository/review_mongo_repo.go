package repository

import (
	"context"
	"fmt"
	"time"

	"cinereview/internal/data/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const reviewCollection = "movie_reviews"

type reviewDocument struct {
	ID           string    `bson:"_id"`
	MovieTitle   string    `bson:"movie_title"`
	ReviewText   string    `bson:"review_text"`
	ReviewerName string    `bson:"reviewer_name"`
	Rating       int       `bson:"rating"`
	CreatedAt    time.Time `bson:"created_at"`
}

type mongoReviewRepository struct {
	collection *mongo.Collection
	now        func() time.Time
	log        *zap.Logger
}

func NewMongoReviewRepository(db *mongo.Database, log *zap.Logger) ReviewRepository {
	return &mongoReviewRepository{
		collection: db.Collection(reviewCollection),
		now:        time.Now,
		log:        log.With(zap.String("repository", "review_mongo")),
	}
}

func (r *mongoReviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	// BSON dates carry millisecond precision.
	doc := reviewDocument{
		ID:           uuid.NewString(),
		MovieTitle:   review.MovieTitle,
		ReviewText:   review.ReviewText,
		ReviewerName: review.ReviewerName,
		Rating:       review.Rating,
		CreatedAt:    r.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("movie_title", review.MovieTitle),
		)
		return fmt.Errorf("insert review for movie %q: %w", review.MovieTitle, err)
	}

	review.ID = uuid.MustParse(doc.ID)
	review.CreatedAt = doc.CreatedAt
	return nil
}

func (r *mongoReviewRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Review, error) {
	limit = clampLimit(limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		r.log.Error("Failed to list recent reviews",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list recent reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reviewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode review documents: %w", err)
	}

	reviews := make([]*entity.Review, 0, len(docs))
	for _, doc := range docs {
		review, err := doc.toEntity()
		if err != nil {
			r.log.Warn("Skipping review document with malformed id",
				zap.String("id", doc.ID),
				zap.Error(err),
			)
			continue
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (d reviewDocument) toEntity() (*entity.Review, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse review id %q: %w", d.ID, err)
	}

	return &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: d.CreatedAt,
		},
		MovieTitle:   d.MovieTitle,
		ReviewText:   d.ReviewText,
		ReviewerName: d.ReviewerName,
		Rating:       d.Rating,
	}, nil
}
