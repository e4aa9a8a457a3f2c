package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dietSurvivalWeb/services"
)

type countingStore struct {
	calls atomic.Int32
	err   error
}

func (s *countingStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.calls.Add(1)
	return 2, s.err
}

func TestCleanupExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemorySessionStore()
	now := time.Now()

	require.NoError(t, store.Create(ctx, &services.Session{ID: "a", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Create(ctx, &services.Session{ID: "b", ExpiresAt: now.Add(time.Hour)}))

	assert.Equal(t, int64(1), cleanupExpiredSessions(ctx, store, now))
	assert.Equal(t, int64(0), cleanupExpiredSessions(ctx, store, now))
}

func TestCleanupExpiredSessions_Error(t *testing.T) {
	store := &countingStore{err: errors.New("db down")}

	assert.Equal(t, int64(0), cleanupExpiredSessions(context.Background(), store, time.Now()))
}

func TestStartCleanupWorker_StopsOnCancel(t *testing.T) {
	store := &countingStore{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		StartCleanupWorker(ctx, store, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return store.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
