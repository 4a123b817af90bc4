package wire

import (
	"cinereview/internal/adaptor"
	"cinereview/pkg/middleware"
	"cinereview/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	limiter *middleware.RateLimiter,
	config *utils.Config,
) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Use(middleware.CORS(config.HTTP.CORSOrigins))

		// GET /api/reviews - ten most recent reviews
		r.Get("/", reviewHandler.GetRecentReviews)

		// POST /api/reviews - submit a review
		r.With(limiter.Middleware(reviewHandler.TooManyRequests)).
			Post("/", reviewHandler.CreateReview)
	})
}
