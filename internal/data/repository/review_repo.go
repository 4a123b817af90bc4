package repository

import (
	"context"
	"fmt"

	"cinereview/internal/data/entity"
	"cinereview/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Insert persists the review and fills in its store-assigned ID and CreatedAt.
	Insert(ctx context.Context, review *entity.Review) error
	// ListRecent returns at most limit reviews, newest first. limit is clamped to [1, MaxListLimit].
	ListRecent(ctx context.Context, limit int) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO movie_reviews (movie_title, review_text, reviewer_name, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		review.MovieTitle,
		review.ReviewText,
		review.ReviewerName,
		review.Rating,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		r.log.Error("Failed to insert review",
			zap.Error(err),
			zap.String("movie_title", review.MovieTitle),
		)
		return fmt.Errorf("insert review for movie %q: %w", review.MovieTitle, err)
	}

	return nil
}

func (r *reviewRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Review, error) {
	limit = clampLimit(limit)

	query := `
		SELECT id, movie_title, review_text, reviewer_name, rating, created_at
		FROM movie_reviews
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list recent reviews",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list recent reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0, limit)
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.MovieTitle,
			&review.ReviewText,
			&review.ReviewerName,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}
