package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demandsurvey/internal/domain/location"
	"demandsurvey/internal/domain/survey"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisDraftStore_SaveAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisDraftStore(client, time.Minute)
	ctx := context.Background()

	dir := location.NewDirectory([]*location.Location{mustLocation(t, "Kottayam", 12)})

	draft, err := survey.NewDraft()
	require.NoError(t, err)
	name, role := "Anu", "customer"
	draft.UpdateFields(&name, nil, &role)
	draft.SelectLocation("Kottayam")
	require.NoError(t, draft.SelectSubRegion(dir, 3))
	draft.AppendSlot()
	require.NoError(t, draft.UpdateSlot(1, "Rice"))

	require.NoError(t, store.Save(ctx, draft))

	got, err := store.Get(ctx, draft.ID())
	require.NoError(t, err)
	assert.Equal(t, draft.ID(), got.ID())
	assert.Equal(t, "Anu", got.Name())
	assert.Equal(t, "customer", got.Role())
	assert.Equal(t, "Kottayam", got.Selection().Location())
	assert.Equal(t, 3, got.Selection().SubRegion())
	assert.Equal(t, []string{"", "Rice"}, got.Slots())

	ttl, err := client.TTL(ctx, DraftKeyPrefix+draft.ID()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisDraftStore_NotFound(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisDraftStore(client, 0)
	ctx := context.Background()

	_, err := store.Get(ctx, "drf_missing")
	assert.ErrorIs(t, err, survey.ErrDraftNotFound)

	_, err = store.Get(ctx, "")
	assert.ErrorIs(t, err, survey.ErrDraftNotFound)

	draft, err := survey.NewDraft()
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, draft))
	require.NoError(t, client.Del(ctx, DraftKeyPrefix+draft.ID()).Err())

	_, err = store.Get(ctx, draft.ID())
	assert.ErrorIs(t, err, survey.ErrDraftNotFound)
}

func mustLocation(t *testing.T, name string, count int) *location.Location {
	t.Helper()
	loc, err := location.NewLocation(name, count)
	require.NoError(t, err)
	return loc
}
