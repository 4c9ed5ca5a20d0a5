package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/integration/events"
)

func newTestCache(t *testing.T) *ResponseCache {
	t.Helper()

	server := miniredis.RunT(t)
	responseCache, err := NewResponseCache(&config.RedisConfig{
		Addr:     server.Addr(),
		CacheTTL: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = responseCache.Close() })

	return responseCache
}

func TestResponseCacheRoundTrip(t *testing.T) {
	responseCache := newTestCache(t)
	ctx := context.Background()

	entry := &CachedResponse{
		Status:      200,
		ContentType: "application/json",
		Body:        []byte(`{"sections":[]}`),
	}
	require.NoError(t, responseCache.Set(ctx, "/api/v1/trackers/visible?date=2024-03-13", entry))

	got, err := responseCache.Get(ctx, "/api/v1/trackers/visible?date=2024-03-13")
	require.NoError(t, err)
	assert.Equal(t, entry.Status, got.Status)
	assert.Equal(t, entry.ContentType, got.ContentType)
	assert.Equal(t, entry.Body, got.Body)
}

func TestResponseCacheMiss(t *testing.T) {
	responseCache := newTestCache(t)

	_, err := responseCache.Get(context.Background(), "/api/v1/statistics")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestResponseCacheFlush(t *testing.T) {
	responseCache := newTestCache(t)
	ctx := context.Background()

	entry := &CachedResponse{Status: 200, Body: []byte("{}")}
	require.NoError(t, responseCache.Set(ctx, "a", entry))
	require.NoError(t, responseCache.Set(ctx, "b", entry))

	require.NoError(t, responseCache.Flush(ctx))

	_, err := responseCache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = responseCache.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestResponseCacheInvalidator(t *testing.T) {
	responseCache := newTestCache(t)
	ctx := context.Background()

	bus := events.NewBus()
	defer bus.Close()

	stop := responseCache.StartInvalidator(bus)
	defer stop()

	entry := &CachedResponse{Status: 200, Body: []byte("{}")}
	require.NoError(t, responseCache.Set(ctx, "/api/v1/statistics", entry))

	// Any store mutation empties the cache.
	bus.Publish(adapter.ChangeKindRecord)

	assert.Eventually(t, func() bool {
		_, err := responseCache.Get(ctx, "/api/v1/statistics")
		return err == ErrCacheMiss
	}, 2*time.Second, 10*time.Millisecond)
}
