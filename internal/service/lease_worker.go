package service

import (
	"context"
	"log"
	"time"

	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
)

// LeaseWorker is a periodic background job that releases claims whose
// lease has expired, so a reviewer who claimed a video and vanished (app
// crash mid-review) cannot block that video from review forever.
type LeaseWorker struct {
	reviews  *repository.ReviewRepo
	leaseTTL time.Duration
	interval time.Duration
	stopCh   chan struct{}
}

// NewLeaseWorker creates a worker that ticks every interval.
func NewLeaseWorker(reviews *repository.ReviewRepo, leaseTTL, interval time.Duration) *LeaseWorker {
	return &LeaseWorker{
		reviews:  reviews,
		leaseTTL: leaseTTL,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic expired-claim sweep.
// It runs one tick immediately, then every interval.
func (w *LeaseWorker) Start(ctx context.Context) {
	log.Printf("lease-worker: starting (lease=%s interval=%s)", w.leaseTTL, w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("lease-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("lease-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *LeaseWorker) Stop() {
	close(w.stopCh)
}

// tick runs one sweep over the pending pool.
func (w *LeaseWorker) tick(ctx context.Context) {
	start := time.Now()
	cutoff := start.Add(-w.leaseTTL)

	released, err := w.reviews.ReleaseExpired(ctx, cutoff)
	if err != nil {
		log.Printf("lease-worker: error: %v", err)
		return
	}

	if released > 0 {
		log.Printf("lease-worker: tick complete — %d expired claims released (%s)",
			released, time.Since(start).Round(time.Millisecond))
	}
}
