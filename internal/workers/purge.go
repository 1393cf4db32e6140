// SPDX-License-Identifier: Apache-2.0

// Package workers holds the background jobs of the service. Currently the
// only job is the expired-secret purge: a garbage collector for rows the
// reveal path already treats as nonexistent.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/store"
)

// purgeWorker deletes expired secret rows on a ticker. Purging is an
// optimisation: reveal correctness never depends on it, because expired
// secrets are filtered at read time.
type purgeWorker struct {
	secretRepository store.SecretRepository
	logger           *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPurgeWorker creates a purge worker over the given repository. The
// worker is idle until Start is called.
func NewPurgeWorker(secretRepository store.SecretRepository, logger *logger.Logger) Worker {
	return &purgeWorker{
		secretRepository: secretRepository,
		logger:           logger,
	}
}

// Start implements [Worker]. It stops any previously running job, then
// launches a background goroutine that deletes expired rows every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (p *purgeWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.purge(jobCtx, interval)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (p *purgeWorker) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// purge runs a single deletion pass. Each pass gets its own deadline so a
// slow database cannot wedge the ticker loop.
func (p *purgeWorker) purge(ctx context.Context, interval time.Duration) {
	tickCtx, cancel := context.WithTimeout(ctx, interval)
	defer cancel()

	deleted, err := p.secretRepository.DeleteExpiredSecrets(tickCtx, time.Now())
	if err != nil {
		p.logger.Err(err).Msg("purge of expired secrets failed")
		return
	}

	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Msg("purged expired secrets")
	}
}
