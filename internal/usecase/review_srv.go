package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinereview/internal/data/entity"
	"cinereview/internal/data/repository"
	"cinereview/internal/dto/request"
	"cinereview/internal/dto/response"
	"cinereview/pkg/utils"

	"go.uber.org/zap"
)

// RecentReviewsLimit is the size of the recent-reviews feed.
const RecentReviewsLimit = repository.MaxListLimit

var ErrValidation = errors.New("validation failed")

// ValidationError lists the fields that failed validation. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type ReviewService interface {
	SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	RecentReviews(ctx context.Context) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	log  *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	review := &entity.Review{
		MovieTitle:   req.MovieTitle,
		ReviewText:   req.ReviewText,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
	}

	if err := s.repo.Insert(ctx, review); err != nil {
		s.log.Error("Failed to submit review",
			zap.Error(err),
			zap.String("movie_title", req.MovieTitle),
		)
		return nil, fmt.Errorf("submit review: %w", err)
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_title", review.MovieTitle),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) RecentReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.ListRecent(ctx, RecentReviewsLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent reviews: %w", err)
	}

	// Never more than RecentReviewsLimit, whatever the store returned.
	if len(reviews) > RecentReviewsLimit {
		s.log.Warn("Store returned more reviews than requested",
			zap.Int("requested", RecentReviewsLimit),
			zap.Int("returned", len(reviews)),
		)
		reviews = reviews[:RecentReviewsLimit]
	}

	out := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = response.ReviewToResponse(review)
	}

	s.log.Debug("Recent reviews retrieved", zap.Int("count", len(out)))

	return out, nil
}
