package rating

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	cacheKey = "rating:leaderboard"
	cacheTTL = 30 * time.Second
)

// UseCase serves the global leaderboard, cached in Redis for a short TTL.
// Cache failures degrade to direct database reads.
type UseCase struct {
	userRepo repository.UserRepository
	cache    *redis.Client
}

func NewUseCase(userRepo repository.UserRepository, cache *redis.Client) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		cache:    cache,
	}
}

// Item is one leaderboard row.
type Item struct {
	UserID   int    `json:"user_id"`
	Nickname string `json:"nickname"`
	Rating   int    `json:"rating"`
}

// Leaderboard returns all users ordered by rating, highest first.
func (uc *UseCase) Leaderboard(ctx context.Context) ([]*Item, error) {
	if items, ok := uc.fromCache(ctx); ok {
		return items, nil
	}

	users, err := uc.userRepo.ListByRating(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(users))
	for _, u := range users {
		items = append(items, &Item{
			UserID:   u.ID,
			Nickname: u.Nickname,
			Rating:   u.Rating,
		})
	}

	uc.toCache(ctx, items)
	return items, nil
}

func (uc *UseCase) fromCache(ctx context.Context) ([]*Item, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, err := uc.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("leaderboard cache read failed")
		}
		return nil, false
	}
	var items []*Item
	if err := json.Unmarshal(raw, &items); err != nil {
		logrus.WithError(err).Warn("leaderboard cache entry malformed")
		return nil, false
	}
	return items, true
}

func (uc *UseCase) toCache(ctx context.Context, items []*Item) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		logrus.WithError(err).Warn("leaderboard cache write failed")
	}
}

// Invalidate drops the cached leaderboard; call after rating changes.
func (uc *UseCase) Invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Del(ctx, cacheKey).Err(); err != nil {
		logrus.WithError(err).Warn("leaderboard cache invalidation failed")
	}
}
