package adaptor

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"cinereview/internal/dto/response"
	"cinereview/internal/page"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const msgThrottled = "Too many submissions. Please wait a moment and try again."

// mountTimeout bounds the initial feed load triggered by a page view.
const mountTimeout = 10 * time.Second

type PageHandler struct {
	page     *page.Page
	sessions sessions.Store
	log      *zap.Logger
}

func NewPageHandler(p *page.Page, store sessions.Store, log *zap.Logger) *PageHandler {
	return &PageHandler{
		page:     p,
		sessions: store,
		log:      log.With(zap.String("handler", "page")),
	}
}

type ratingOption struct {
	Value    int
	Checked  bool
	Lit      bool
	Disabled bool
}

type pageView struct {
	Toasts  []page.Notification
	Form    *page.Form
	Ratings []ratingOption
	Loading bool
	Reviews []response.ReviewCard
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	// The initial load happens once, so it must not die with this request.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), mountTimeout)
	h.page.Mount(ctx)
	cancel()

	toasts := popFlashes(h.sessions, w, r)
	h.render(w, http.StatusOK, h.page.NewForm(nil), toasts)
}

// SubmitReview handles POST /reviews
func (h *PageHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	toasts := &page.Toasts{}
	form := h.page.NewForm(toasts)
	if err := fillForm(form, r); err != nil {
		h.log.Warn("Unreadable review form", zap.Error(err))
		toasts.Notify(page.Notification{Level: page.LevelError, Message: page.MsgIncomplete})
		h.render(w, http.StatusBadRequest, form, toasts.Items())
		return
	}

	err := form.Submit(r.Context())
	if err == nil {
		if err := saveFlashes(h.sessions, w, r, toasts.Items()); err != nil {
			h.log.Warn("Failed to store flash notifications", zap.Error(err))
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, page.ErrIncomplete):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, page.ErrSubmitInFlight):
		status = http.StatusConflict
	}
	h.render(w, status, form, toasts.Items())
}

// Throttled is the rate limiter's response for the HTML form. The posted
// values are echoed back so nothing typed is lost.
func (h *PageHandler) Throttled(w http.ResponseWriter, r *http.Request) {
	h.log.Warn("Review form rate limited", zap.String("ip", r.RemoteAddr))

	form := h.page.NewForm(nil)
	_ = fillForm(form, r)
	h.render(w, http.StatusTooManyRequests, form, []page.Notification{
		{Level: page.LevelError, Message: msgThrottled},
	})
}

func fillForm(form *page.Form, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	form.MovieTitle = r.PostForm.Get("movie_title")
	form.ReviewerName = r.PostForm.Get("reviewer_name")
	form.ReviewText = r.PostForm.Get("review_text")
	if rating, err := strconv.Atoi(r.PostForm.Get("rating")); err == nil {
		form.SelectRating(rating)
	}
	return nil
}

func (h *PageHandler) render(w http.ResponseWriter, status int, form *page.Form, toasts []page.Notification) {
	feed := h.page.Feed.Snapshot()

	lit := form.PreviewStars()
	ratings := make([]ratingOption, response.StarCount)
	for i := range ratings {
		ratings[i] = ratingOption{
			Value:    i + 1,
			Checked:  form.Rating == i+1,
			Lit:      lit[i],
			Disabled: form.InFlight(),
		}
	}

	view := pageView{
		Toasts:  toasts,
		Form:    form,
		Ratings: ratings,
		Loading: feed.Loading,
		Reviews: feed.Cards(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.log.Error("Failed to render page", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
