package page

import (
	"context"
	"sync"

	"cinereview/internal/usecase"

	"go.uber.org/zap"
)

// Page composes the shared review feed with per-request submission forms.
type Page struct {
	Feed *Feed

	submitter ReviewSubmitter
	mountOnce sync.Once
	log       *zap.Logger
}

func New(reviews usecase.ReviewService, log *zap.Logger) *Page {
	return &Page{
		Feed:      NewFeed(reviews, log),
		submitter: reviews,
		log:       log,
	}
}

// Mount performs the initial feed load. Later calls do nothing.
func (p *Page) Mount(ctx context.Context) {
	p.mountOnce.Do(func() {
		p.Feed.Load(ctx)
	})
}

// Reload refreshes the feed after a review was stored elsewhere.
func (p *Page) Reload(ctx context.Context) {
	p.Feed.Load(ctx)
}

// NewForm returns an empty form whose successful submissions reload the feed.
func (p *Page) NewForm(notifier Notifier) *Form {
	return NewForm(p.submitter, notifier, p.Reload, p.log)
}
