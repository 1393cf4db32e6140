package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle. Start launches the
// job's goroutine; Stop blocks until it has fully exited.
type Worker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
