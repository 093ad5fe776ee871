package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDirectory struct {
	users     []user.User
	getErr    error
	listErr   error
	snapshots int
}

func (m *memDirectory) GetUser(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.getErr != nil {
		return user.User{}, m.getErr
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memDirectory) ListUsers(_ context.Context, excludeID uuid.UUID) ([]user.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		if u.ID != excludeID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memDirectory) Snapshot(ctx context.Context, fn func(ctx context.Context, dir user.Directory) error) error {
	m.snapshots++
	return fn(ctx, m)
}

type memCache struct {
	items   map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	c.ttls[key] = ttl
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func named(name string, offers, wants []string) user.User {
	u := user.User{ID: uuid.New(), Name: name}
	for _, n := range offers {
		u.Offered = append(u.Offered, skill.Skill{ID: uuid.New(), Name: n})
	}
	for _, n := range wants {
		u.Wanted = append(u.Wanted, skill.Skill{ID: uuid.New(), Name: n})
	}
	return u
}

func demoDirectory() (*memDirectory, user.User) {
	aisha := named("Aisha", []string{"Python", "Data Viz"}, []string{"UI/UX", "Branding"})
	raj := named("Raj", []string{"Guitar", "Hindi"}, []string{"French", "React"})
	eva := named("Eva", []string{"SQL", "UI/UX"}, []string{"Public Speaking", "Photography"})
	return &memDirectory{users: []user.User{aisha, raj, eva}}, aisha
}

func TestFindMatches_RanksCandidates(t *testing.T) {
	dir, aisha := demoDirectory()
	uc := NewMatchingUsecase(dir, nil, 0, nil)

	got, err := uc.FindMatches(context.Background(), aisha.ID, matching.DefaultLimit)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Eva", got[0].User.Name)
	assert.Equal(t, 3, got[0].Score)
	assert.Equal(t, 1, dir.snapshots)
}

func TestFindMatches_UnknownUserIsEmpty(t *testing.T) {
	dir, _ := demoDirectory()
	uc := NewMatchingUsecase(dir, nil, 0, nil)

	got, err := uc.FindMatches(context.Background(), uuid.New(), 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindMatches_InvalidLimit(t *testing.T) {
	dir, aisha := demoDirectory()
	uc := NewMatchingUsecase(dir, nil, 0, nil)

	for _, limit := range []int{0, -3} {
		_, err := uc.FindMatches(context.Background(), aisha.ID, limit)
		assert.ErrorIs(t, err, ErrInvalidLimit)
		assert.ErrorIs(t, err, matching.ErrInvalidLimit)
	}
	assert.Zero(t, dir.snapshots)
}

func TestFindMatches_PropagatesDirectoryErrors(t *testing.T) {
	boom := errors.New("db down")

	dir, aisha := demoDirectory()
	dir.listErr = boom
	_, err := NewMatchingUsecase(dir, nil, 0, nil).FindMatches(context.Background(), aisha.ID, 10)
	assert.ErrorIs(t, err, boom)

	dir.listErr = nil
	dir.getErr = boom
	_, err = NewMatchingUsecase(dir, nil, 0, nil).FindMatches(context.Background(), aisha.ID, 10)
	assert.ErrorIs(t, err, boom)
}

func TestFindMatches_Properties(t *testing.T) {
	users := []user.User{
		named("a", []string{"Go", "SQL"}, []string{"Rust"}),
		named("b", []string{"rust"}, []string{"go"}),
		named("c", []string{"sql"}, nil),
		named("d", []string{"Cooking"}, []string{"Yoga"}),
		named("e", []string{"RUST", "Go"}, []string{"SQL"}),
		named("f", nil, []string{"go", "sql"}),
	}
	dir := &memDirectory{users: users}
	uc := NewMatchingUsecase(dir, nil, 0, nil)

	for _, u := range users {
		for _, limit := range []int{1, 2, 10} {
			got, err := uc.FindMatches(context.Background(), u.ID, limit)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(got), limit)
			for i, m := range got {
				assert.NotEqual(t, u.ID, m.User.ID)
				assert.Positive(t, m.Score)
				if i > 0 {
					assert.LessOrEqual(t, m.Score, got[i-1].Score)
				}
			}

			again, err := uc.FindMatches(context.Background(), u.ID, limit)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		}
	}
}

func TestFindMatches_UsesCache(t *testing.T) {
	dir, aisha := demoDirectory()
	cache := newMemCache()
	uc := NewMatchingUsecase(dir, cache, time.Minute, nil)

	first, err := uc.FindMatches(context.Background(), aisha.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cache.ttls[MatchesCacheKey(aisha.ID, 10)])

	second, err := uc.FindMatches(context.Background(), aisha.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, dir.snapshots)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].User.ID, second[0].User.ID)
	assert.Equal(t, first[0].Score, second[0].Score)

	uc.Invalidate(context.Background())
	assert.Equal(t, []string{"matches:*"}, cache.deleted)

	_, err = uc.FindMatches(context.Background(), aisha.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, dir.snapshots)
}

func TestFindMatches_CacheErrorsBypassed(t *testing.T) {
	dir, aisha := demoDirectory()
	cache := newMemCache()
	cache.getErr = errors.New("redis timeout")
	uc := NewMatchingUsecase(dir, cache, time.Minute, nil)

	got, err := uc.FindMatches(context.Background(), aisha.ID, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFindMatches_UnknownUserNotCached(t *testing.T) {
	dir, _ := demoDirectory()
	cache := newMemCache()
	uc := NewMatchingUsecase(dir, cache, time.Minute, nil)

	_, err := uc.FindMatches(context.Background(), uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, cache.items)
}

func TestMatchesCacheKey(t *testing.T) {
	id := uuid.MustParse("5f0c6a3e-1f3b-4a53-9b7e-2c1d8a1f9e10")
	assert.Equal(t, "matches:5f0c6a3e-1f3b-4a53-9b7e-2c1d8a1f9e10:10", MatchesCacheKey(id, 10))
}
