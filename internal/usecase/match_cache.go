package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const matchesCachePattern = "matches:*"

func MatchesCacheKey(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("matches:%s:%d", userID, limit)
}

// noopCache is used when caching is disabled.
type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) DeleteByPattern(context.Context, string) error             { return nil }
