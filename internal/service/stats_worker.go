package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsWorker listens for PostgreSQL NOTIFY on the 'stats_changes' channel
// and batches rolling-stat recomputes. Verification and arbitration notify
// with the affected user ID; if one user verifies several sessions inside
// the batch window, their stats recompute once. Failures are logged and
// never propagate back to the operation that triggered them.
type StatsWorker struct {
	pool     *pgxpool.Pool
	statsSvc *StatsService
	cache    *CacheService
	batchMs  time.Duration

	mu      sync.Mutex
	pending map[string]struct{} // user IDs waiting for recompute
}

// NewStatsWorker creates a stats recompute worker.
func NewStatsWorker(pool *pgxpool.Pool, statsSvc *StatsService, cache *CacheService) *StatsWorker {
	return &StatsWorker{
		pool:     pool,
		statsSvc: statsSvc,
		cache:    cache,
		batchMs:  5 * time.Second,
		pending:  make(map[string]struct{}),
	}
}

// Start begins listening for stats_changes notifications and processing batches.
func (w *StatsWorker) Start(ctx context.Context) {
	log.Printf("stats-worker: starting (batch window=%s)", w.batchMs)

	for {
		if err := w.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("stats-worker: stopping (context cancelled)")
				return
			}
			log.Printf("stats-worker: listen error, reconnecting in 5s: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				log.Println("stats-worker: stopping (context cancelled)")
				return
			}
		}
	}
}

// listenLoop acquires a dedicated connection, LISTENs on stats_changes,
// and accumulates user IDs into batched windows.
func (w *StatsWorker) listenLoop(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN stats_changes")
	if err != nil {
		return err
	}
	log.Println("stats-worker: listening on stats_changes")

	flushCtx, flushCancel := context.WithCancel(ctx)
	defer flushCancel()
	go w.flushLoop(flushCtx)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		userID := notification.Payload
		if userID == "" {
			continue
		}

		w.mu.Lock()
		w.pending[userID] = struct{}{}
		w.mu.Unlock()
	}
}

// flushLoop periodically drains the pending set and recomputes stats.
func (w *StatsWorker) flushLoop(ctx context.Context) {
	ticker := time.NewTicker(w.batchMs)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush(ctx)
		case <-ctx.Done():
			// Final flush before exit
			w.flush(context.Background())
			return
		}
	}
}

// flush drains the pending set and recomputes each user's rolling stats.
func (w *StatsWorker) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}

	// Swap out the pending map
	batch := w.pending
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	recomputed := 0
	for userID := range batch {
		if err := w.statsSvc.Recompute(ctx, userID); err != nil {
			log.Printf("stats-worker: recompute error for %s: %v", userID, err)
			continue
		}

		if w.cache != nil {
			if err := w.cache.InvalidateUser(ctx, userID); err != nil {
				log.Printf("stats-worker: cache invalidate error for %s: %v", userID, err)
			}
		}

		recomputed++
	}

	if recomputed > 0 {
		log.Printf("stats-worker: batch complete — %d users recomputed (from %d notifications)",
			recomputed, len(batch))
	}
}
