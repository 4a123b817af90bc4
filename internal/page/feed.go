package page

import (
	"context"
	"sync"
	"sync/atomic"

	"cinereview/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewSource interface {
	RecentReviews(ctx context.Context) ([]response.ReviewResponse, error)
}

// FeedState is a point-in-time copy of the feed for rendering.
type FeedState struct {
	Reviews []response.ReviewResponse
	Loading bool
}

func (s FeedState) Cards() []response.ReviewCard {
	return response.ReviewsToCards(s.Reviews)
}

// Feed holds the most recent reviews, newest first. It is shared by all
// requests.
type Feed struct {
	source ReviewSource
	log    *zap.Logger

	started atomic.Uint64

	mu      sync.Mutex
	reviews []response.ReviewResponse
	loading bool
	applied uint64
}

func NewFeed(source ReviewSource, log *zap.Logger) *Feed {
	return &Feed{
		source:  source,
		loading: true,
		log:     log.With(zap.String("component", "review_feed")),
	}
}

// Load fetches the recent reviews and replaces the feed contents. A failed
// fetch is logged and leaves the current reviews in place. A fetch that
// started before the currently shown one is discarded.
func (f *Feed) Load(ctx context.Context) {
	seq := f.started.Add(1)

	reviews, err := f.source.RecentReviews(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false

	if err != nil {
		f.log.Error("Error fetching reviews", zap.Error(err), zap.Uint64("load", seq))
		return
	}
	if seq < f.applied {
		f.log.Debug("Discarding stale feed load",
			zap.Uint64("load", seq),
			zap.Uint64("applied", f.applied),
		)
		return
	}

	f.reviews = reviews
	f.applied = seq
}

func (f *Feed) Snapshot() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FeedState{
		Reviews: append([]response.ReviewResponse(nil), f.reviews...),
		Loading: f.loading,
	}
}
