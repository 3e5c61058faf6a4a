package analysis

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

var (
	testRedisURL   string
	redisContainer testcontainers.Container
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Container-backed tests only run in full mode.
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	redisContainer, err = tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start redis container: %v\n", err)
		os.Exit(1)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get redis endpoint: %v\n", err)
		os.Exit(1)
	}
	testRedisURL = "redis://" + endpoint

	code := m.Run()

	if err := redisContainer.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to terminate redis container: %v\n", err)
	}
	os.Exit(code)
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	opts, err := goredis.ParseURL(testRedisURL)
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return NewRedisStore(client)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := newTestRedisStore(t)
	ctx := context.Background()

	value := EventAnalysis{
		EventID:   "401547439",
		Summary:   Summary{Total: 3, Positive: 2, Negative: 1, AvgScore: 0.4},
		PostCount: 3,
	}
	require.NoError(t, store.Set(ctx, "event:401547439", value, time.Minute))

	got, ok, err := store.Get(ctx, "event:401547439")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.EventID, got.EventID)
	assert.Equal(t, value.Summary, got.Summary)
}

func TestRedisStoreMissingKey(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := newTestRedisStore(t)

	_, ok, err := store.Get(context.Background(), "event:unknown")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "event:e1", EventAnalysis{EventID: "e1"}, time.Minute))
	require.NoError(t, store.Delete(ctx, "event:e1"))

	_, ok, err := store.Get(ctx, "event:e1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "event:e1", EventAnalysis{EventID: "e1"}, 100*time.Millisecond))

	assert.Eventually(t, func() bool {
		_, ok, err := store.Get(ctx, "event:e1")
		return err == nil && !ok
	}, 2*time.Second, 50*time.Millisecond)
}
