package page

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func filledForm(submitter ReviewSubmitter, notifier Notifier, onSubmitted func(context.Context)) *Form {
	f := NewForm(submitter, notifier, onSubmitted, zap.NewNop())
	f.MovieTitle = "Inception"
	f.ReviewerName = "Ada"
	f.ReviewText = "Mind-bending."
	f.SelectRating(5)
	return f
}

func TestForm_IncompleteSubmissionDoesNotInsert(t *testing.T) {
	cases := map[string]func(f *Form){
		"empty title":    func(f *Form) { f.MovieTitle = "" },
		"empty text":     func(f *Form) { f.ReviewText = "" },
		"empty reviewer": func(f *Form) { f.ReviewerName = "" },
		"unset rating":   func(f *Form) { f.Rating = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newFakeReviews()
			toasts := &Toasts{}
			reloads := 0
			f := filledForm(svc, toasts, func(context.Context) { reloads++ })
			mutate(f)
			title, text, reviewer, rating := f.MovieTitle, f.ReviewText, f.ReviewerName, f.Rating

			err := f.Submit(context.Background())

			assert.ErrorIs(t, err, ErrIncomplete)
			assert.Empty(t, svc.submissions())
			assert.Equal(t, []Notification{{Level: LevelError, Message: MsgIncomplete}}, toasts.Items())
			assert.Zero(t, reloads)
			assert.False(t, f.InFlight())
			assert.Equal(t, title, f.MovieTitle)
			assert.Equal(t, text, f.ReviewText)
			assert.Equal(t, reviewer, f.ReviewerName)
			assert.Equal(t, rating, f.Rating)
		})
	}
}

func TestForm_ValidSubmissionInsertsResetsAndReloads(t *testing.T) {
	svc := newFakeReviews()
	toasts := &Toasts{}
	reloads := 0
	f := filledForm(svc, toasts, func(context.Context) { reloads++ })
	f.HoveredRating = 2

	require.NoError(t, f.Submit(context.Background()))

	subs := svc.submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, "Inception", subs[0].MovieTitle)
	assert.Equal(t, "Ada", subs[0].ReviewerName)
	assert.Equal(t, "Mind-bending.", subs[0].ReviewText)
	assert.Equal(t, 5, subs[0].Rating)

	assert.Equal(t, []Notification{{Level: LevelSuccess, Message: MsgSubmitted}}, toasts.Items())
	assert.Empty(t, f.MovieTitle)
	assert.Empty(t, f.ReviewText)
	assert.Empty(t, f.ReviewerName)
	assert.Zero(t, f.Rating)
	assert.Zero(t, f.HoveredRating)
	assert.Equal(t, 1, reloads)
	assert.False(t, f.InFlight())
}

func TestForm_CallbackRunsWhileStillInFlight(t *testing.T) {
	var f *Form
	var inFlightDuringCallback bool
	f = filledForm(newFakeReviews(), nil, func(context.Context) {
		inFlightDuringCallback = f.InFlight()
	})

	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, inFlightDuringCallback)
	assert.False(t, f.InFlight())
}

func TestForm_InsertFailurePreservesFields(t *testing.T) {
	svc := newFakeReviews()
	svc.submitErr = errStore
	toasts := &Toasts{}
	reloads := 0
	f := filledForm(svc, toasts, func(context.Context) { reloads++ })

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, errStore)
	assert.Len(t, svc.submissions(), 1)
	assert.Equal(t, []Notification{{Level: LevelError, Message: MsgSubmitFailed}}, toasts.Items())
	assert.Equal(t, "Inception", f.MovieTitle)
	assert.Equal(t, "Ada", f.ReviewerName)
	assert.Equal(t, "Mind-bending.", f.ReviewText)
	assert.Equal(t, 5, f.Rating)
	assert.Zero(t, reloads)
	assert.False(t, f.InFlight())
}

func TestForm_SecondSubmitWhileInFlightIsRejected(t *testing.T) {
	submitter := newBlockingSubmitter()
	toasts := &Toasts{}
	f := filledForm(submitter, toasts, nil)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()
	<-submitter.entered

	assert.True(t, f.InFlight())
	assert.ErrorIs(t, f.Submit(context.Background()), ErrSubmitInFlight)

	close(submitter.release)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), submitter.count())
	assert.False(t, f.InFlight())
	assert.Equal(t, []Notification{{Level: LevelSuccess, Message: MsgSubmitted}}, toasts.Items())
}

func TestForm_CancelledInsertKeepsFields(t *testing.T) {
	submitter := newBlockingSubmitter()
	f := filledForm(submitter, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Submit(ctx) }()
	<-submitter.entered
	cancel()

	err := <-done
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, "Inception", f.MovieTitle)
	assert.False(t, f.InFlight())
}

func TestForm_RatingSelectionAndPreview(t *testing.T) {
	f := NewForm(newFakeReviews(), nil, nil, zap.NewNop())

	f.SelectRating(0)
	f.SelectRating(6)
	assert.Zero(t, f.Rating)

	f.SelectRating(3)
	assert.Equal(t, 3, f.Rating)
	assert.Equal(t, 3, f.PreviewRating())

	f.HoveredRating = 5
	assert.Equal(t, 5, f.PreviewRating())
	assert.Equal(t, [5]bool{true, true, true, true, true}, f.PreviewStars())

	f.HoveredRating = 0
	assert.Equal(t, [5]bool{true, true, true, false, false}, f.PreviewStars())
}

func TestForm_OutOfRangeRatingIsIncomplete(t *testing.T) {
	svc := newFakeReviews()
	f := filledForm(svc, nil, nil)
	f.Rating = 9

	assert.ErrorIs(t, f.Submit(context.Background()), ErrIncomplete)
	assert.Empty(t, svc.submissions())
}
