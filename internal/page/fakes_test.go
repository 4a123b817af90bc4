package page

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cinereview/internal/dto/request"
	"cinereview/internal/dto/response"
)

// fakeReviews is an in-memory review service. Submitted reviews are listed
// newest first, capped at ten.
type fakeReviews struct {
	mu        sync.Mutex
	submitted []request.CreateReviewRequest
	stored    []response.ReviewResponse
	submitErr error
	listErr   error
	listCalls int
	clock     time.Time
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{clock: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeReviews) SubmitReview(_ context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = append(f.submitted, *req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.clock = f.clock.Add(time.Minute)
	review := response.ReviewResponse{
		ID:           fmt.Sprintf("review-%d", len(f.stored)+1),
		MovieTitle:   req.MovieTitle,
		ReviewText:   req.ReviewText,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		CreatedAt:    f.clock,
	}
	f.stored = append([]response.ReviewResponse{review}, f.stored...)
	return &review, nil
}

func (f *fakeReviews) RecentReviews(_ context.Context) ([]response.ReviewResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	n := min(len(f.stored), 10)
	return append([]response.ReviewResponse(nil), f.stored[:n]...), nil
}

func (f *fakeReviews) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

func (f *fakeReviews) submissions() []request.CreateReviewRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]request.CreateReviewRequest(nil), f.submitted...)
}

func (f *fakeReviews) lists() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// blockingSubmitter parks every SubmitReview until release is closed.
type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
	calls   int32
	mu      sync.Mutex
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{entered: make(chan struct{}, 4), release: make(chan struct{})}
}

func (b *blockingSubmitter) SubmitReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.entered <- struct{}{}
	select {
	case <-b.release:
		return &response.ReviewResponse{ID: "r1", MovieTitle: req.MovieTitle, Rating: req.Rating}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *blockingSubmitter) count() int32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// scriptedSource answers each RecentReviews call with the next queued step.
type scriptedSource struct {
	steps chan sourceStep
	calls chan struct{}
}

type sourceStep struct {
	reviews []response.ReviewResponse
	err     error
	wait    chan struct{}
}

func newScriptedSource() *scriptedSource {
	return &scriptedSource{steps: make(chan sourceStep, 8), calls: make(chan struct{}, 8)}
}

func (s *scriptedSource) RecentReviews(ctx context.Context) ([]response.ReviewResponse, error) {
	step := <-s.steps
	s.calls <- struct{}{}
	if step.wait != nil {
		<-step.wait
	}
	return step.reviews, step.err
}

var errStore = errors.New("store unavailable")
