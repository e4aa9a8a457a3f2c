package workers

import (
	"context"
	"log"
	"time"
)

// ExpiredSessionDeleter is the part of a session store the cleanup worker
// needs.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// StartCleanupWorker removes expired sessions every interval until ctx is
// cancelled. It blocks; run it in its own goroutine.
func StartCleanupWorker(ctx context.Context, store ExpiredSessionDeleter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session cleanup worker stopped")
			return
		case <-ticker.C:
			cleanupExpiredSessions(ctx, store, time.Now())
		}
	}
}

func cleanupExpiredSessions(ctx context.Context, store ExpiredSessionDeleter, now time.Time) int64 {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	n, err := store.DeleteExpired(ctx, now)
	if err != nil {
		log.Printf("Error deleting expired sessions: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("Deleted %d expired sessions", n)
	}
	return n
}
