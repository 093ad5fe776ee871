package usecase

import (
	"context"
	"errors"
	"time"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchingUsecase interface {
	FindMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Match, error)
}

type Matching struct {
	dir      user.SnapshotDirectory
	cache    MatchCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewMatchingUsecase wires the matcher to its data source. A nil cache or a
// non-positive cacheTTL disables result caching.
func NewMatchingUsecase(dir user.SnapshotDirectory, cache MatchCache, cacheTTL time.Duration, l *zap.Logger) *Matching {
	if cache == nil || cacheTTL <= 0 {
		cache = noopCache{}
	}
	return &Matching{dir: dir, cache: cache, cacheTTL: cacheTTL, logger: logger.OrNop(l)}
}

// FindMatches ranks every other user against userID. An unknown user yields an
// empty result. Errors from the directory are returned as-is.
func (u *Matching) FindMatches(ctx context.Context, userID uuid.UUID, limit int) ([]matching.Match, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	key := MatchesCacheKey(userID, limit)
	var cached []matching.Match
	hit, err := u.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		u.logger.Warn("match cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	var (
		out   []matching.Match
		found bool
	)
	err = u.dir.Snapshot(ctx, func(ctx context.Context, dir user.Directory) error {
		target, err := dir.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil
			}
			return err
		}
		found = true

		candidates, err := dir.ListUsers(ctx, userID)
		if err != nil {
			return err
		}

		out, err = matching.Rank(ctx, target, candidates, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return []matching.Match{}, nil
	}

	if err := u.cache.SetJSON(ctx, key, out, u.cacheTTL); err != nil {
		u.logger.Warn("match cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}

// Invalidate drops every cached ranking. Any profile change can move any
// user's results, so per-user invalidation is not enough.
func (u *Matching) Invalidate(ctx context.Context) {
	if err := u.cache.DeleteByPattern(ctx, matchesCachePattern); err != nil {
		u.logger.Warn("match cache invalidation failed", zap.Error(err))
	}
}
