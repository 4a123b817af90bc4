package wire

import (
	"net/http"

	"cinereview/internal/adaptor"
	"cinereview/internal/data/repository"
	"cinereview/internal/page"
	"cinereview/internal/usecase"
	"cinereview/pkg/middleware"
	"cinereview/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Router *chi.Mux
	Page   *page.Page
}

// Wiring builds services, the shared page and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	p := page.New(service.Review, logger)
	handler := adaptor.NewHandler(service, p, adaptor.NewSessionStore(config.Session.Secret), logger)

	return &App{
		Router: setupRouter(handler, config, logger),
		Page:   p,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// One budget per client, shared by the HTML form and the JSON API.
	limiter := middleware.NewRateLimiter(config.HTTP.SubmitRatePerMinute)

	wirePage(r, handler.Page, limiter)
	wireReview(r, handler.Review, limiter, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
