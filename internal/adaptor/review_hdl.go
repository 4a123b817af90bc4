package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cinereview/internal/dto/request"
	"cinereview/internal/usecase"
	"cinereview/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service     usecase.ReviewService
	onSubmitted func(ctx context.Context)
	log         *zap.Logger
}

// NewReviewHandler builds the JSON API handler. onSubmitted runs after each
// stored review and may be nil.
func NewReviewHandler(service usecase.ReviewService, onSubmitted func(ctx context.Context), log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		onSubmitted: onSubmitted,
		log:         log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit review")
		return
	}

	if h.onSubmitted != nil {
		h.onSubmitted(r.Context())
	}

	utils.ResponseCreated(w, "Review submitted successfully", review)
}

// GetRecentReviews handles GET /api/reviews
func (h *ReviewHandler) GetRecentReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.RecentReviews(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get recent reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// TooManyRequests is the rate limiter's response for the JSON API.
func (h *ReviewHandler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.log.Warn("Review submission rate limited", zap.String("ip", r.RemoteAddr))
	utils.ResponseTooManyRequests(w, "Too many submissions, please try again later")
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, context.Canceled):
		h.log.Warn(operation+" cancelled by client",
			zap.String("operation", operation))
		utils.ResponseJSON(w, 499, false, "Client closed request", nil, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
