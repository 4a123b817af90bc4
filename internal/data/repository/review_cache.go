package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"cinereview/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	recentReviewsCacheKey = "movie_reviews:recent"
	recentReviewsGenKey   = "movie_reviews:recent:gen"
)

// cachedReviewRepository keeps the newest MaxListLimit reviews in Redis.
// Entries are keyed by a generation that Insert bumps, so a snapshot read
// from the store before an insert is only ever written under a generation
// no reader asks for again. Cache errors are logged and fall through to the
// wrapped store.
type cachedReviewRepository struct {
	next  ReviewRepository
	redis redis.Cmdable
	ttl   time.Duration
	log   *zap.Logger
}

// WithRecentCache wraps next with a cache-aside layer on ListRecent.
// A nil client returns next unchanged.
func WithRecentCache(next ReviewRepository, client redis.Cmdable, ttl time.Duration, log *zap.Logger) ReviewRepository {
	if client == nil {
		return next
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &cachedReviewRepository{
		next:  next,
		redis: client,
		ttl:   ttl,
		log:   log.With(zap.String("repository", "review_cache")),
	}
}

func (r *cachedReviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	if err := r.next.Insert(ctx, review); err != nil {
		return err
	}

	if err := r.redis.Incr(ctx, recentReviewsGenKey).Err(); err != nil {
		r.log.Warn("Failed to invalidate recent reviews cache", zap.Error(err))
	}
	return nil
}

func (r *cachedReviewRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Review, error) {
	limit = clampLimit(limit)

	gen, err := r.redis.Get(ctx, recentReviewsGenKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.log.Warn("Recent reviews cache generation read failed", zap.Error(err))
		return r.next.ListRecent(ctx, limit)
	}
	key := recentKey(gen)

	data, err := r.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []*entity.Review
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return head(cached, limit), nil
		}
		r.log.Warn("Discarding undecodable recent reviews cache entry")
	case !errors.Is(err, redis.Nil):
		r.log.Warn("Recent reviews cache read failed", zap.Error(err))
	}

	reviews, err := r.next.ListRecent(ctx, MaxListLimit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(reviews); err == nil {
		if err := r.redis.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			r.log.Warn("Recent reviews cache write failed", zap.Error(err))
		}
	}

	return head(reviews, limit), nil
}

func recentKey(gen int64) string {
	return recentReviewsCacheKey + ":" + strconv.FormatInt(gen, 10)
}

func head(reviews []*entity.Review, n int) []*entity.Review {
	if len(reviews) > n {
		return reviews[:n]
	}
	return reviews
}
