package page

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"cinereview/internal/dto/request"
	"cinereview/internal/dto/response"

	"go.uber.org/zap"
)

var (
	ErrIncomplete     = errors.New("review form incomplete")
	ErrSubmitInFlight = errors.New("review submission already in flight")
)

type ReviewSubmitter interface {
	SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
}

// Form is the review submission form. A Form belongs to one visitor
// interaction; only Submit may be called concurrently.
type Form struct {
	MovieTitle   string
	ReviewText   string
	ReviewerName string
	Rating       int // 0 = unset

	// HoveredRating only drives the star preview and is never submitted.
	HoveredRating int

	inFlight    atomic.Bool
	submitter   ReviewSubmitter
	notifier    Notifier
	onSubmitted func(ctx context.Context)
	log         *zap.Logger
}

// NewForm returns an empty form. onSubmitted runs after every successful
// insert and may be nil.
func NewForm(submitter ReviewSubmitter, notifier Notifier, onSubmitted func(ctx context.Context), log *zap.Logger) *Form {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Form{
		submitter:   submitter,
		notifier:    notifier,
		onSubmitted: onSubmitted,
		log:         log.With(zap.String("component", "review_form")),
	}
}

// SelectRating sets the rating; values outside 1..5 are ignored.
func (f *Form) SelectRating(star int) {
	if star >= 1 && star <= response.StarCount {
		f.Rating = star
	}
}

// PreviewRating is the number of stars to highlight: the hovered star if
// any, otherwise the selected rating.
func (f *Form) PreviewRating() int {
	if f.HoveredRating > 0 {
		return f.HoveredRating
	}
	return f.Rating
}

func (f *Form) PreviewStars() [response.StarCount]bool {
	return response.StarUnits(f.PreviewRating())
}

func (f *Form) InFlight() bool {
	return f.inFlight.Load()
}

// Submit validates the form and inserts the review. On success the fields
// are cleared and onSubmitted is called; on failure the fields are kept.
func (f *Form) Submit(ctx context.Context) error {
	if !f.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.inFlight.Store(false)

	if !f.complete() {
		f.notify(LevelError, MsgIncomplete)
		return ErrIncomplete
	}

	req := &request.CreateReviewRequest{
		MovieTitle:   f.MovieTitle,
		ReviewText:   f.ReviewText,
		ReviewerName: f.ReviewerName,
		Rating:       f.Rating,
	}

	review, err := f.submitter.SubmitReview(ctx, req)
	if err != nil {
		f.log.Error("Error submitting review", zap.Error(err))
		f.notify(LevelError, MsgSubmitFailed)
		return fmt.Errorf("submit review form: %w", err)
	}

	f.log.Debug("Review form submitted", zap.String("review_id", review.ID))
	f.notify(LevelSuccess, MsgSubmitted)
	f.reset()

	if f.onSubmitted != nil {
		f.onSubmitted(ctx)
	}
	return nil
}

func (f *Form) complete() bool {
	return f.MovieTitle != "" &&
		f.ReviewText != "" &&
		f.ReviewerName != "" &&
		f.Rating >= 1 && f.Rating <= response.StarCount
}

func (f *Form) reset() {
	f.MovieTitle = ""
	f.ReviewText = ""
	f.ReviewerName = ""
	f.Rating = 0
	f.HoveredRating = 0
}

func (f *Form) notify(level Level, msg string) {
	f.notifier.Notify(Notification{Level: level, Message: msg})
}
