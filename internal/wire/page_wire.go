package wire

import (
	"cinereview/internal/adaptor"
	"cinereview/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wirePage(r chi.Router, pageHandler *adaptor.PageHandler, limiter *middleware.RateLimiter) {
	// GET / - form and recent reviews
	r.Get("/", pageHandler.Index)

	// POST /reviews - form submission, redirects back to / on success
	r.With(limiter.Middleware(pageHandler.Throttled)).
		Post("/reviews", pageHandler.SubmitReview)
}
