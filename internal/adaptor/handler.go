package adaptor

import (
	"cinereview/internal/page"
	"cinereview/internal/usecase"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

type Handler struct {
	Review *ReviewHandler
	Page   *PageHandler
}

func NewHandler(service *usecase.Service, p *page.Page, store sessions.Store, log *zap.Logger) *Handler {
	return &Handler{
		Review: NewReviewHandler(service.Review, p.Reload, log),
		Page:   NewPageHandler(p, store, log),
	}
}
