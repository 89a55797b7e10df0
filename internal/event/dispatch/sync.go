package dispatch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// SyncDispatcher executes handlers synchronously in the caller's goroutine.
// Handlers run one at a time; there is no queue, no worker pool, and no way
// to cancel a handler mid-execution. A slow handler blocks the publisher for
// its full duration, which is why the dispatcher can warn when a handler
// exceeds a configured threshold.
type SyncDispatcher struct {
	executor *Executor
	logger   zerolog.Logger
	slowWarn time.Duration

	// Stats
	dispatched  atomic.Uint64
	succeeded   atomic.Uint64
	failed      atomic.Uint64
	panicked    atomic.Uint64
	skipped     atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewSyncDispatcher creates a new synchronous dispatcher.
func NewSyncDispatcher(opts ...SyncOption) *SyncDispatcher {
	d := &SyncDispatcher{
		executor: NewExecutor(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SyncOption configures a SyncDispatcher.
type SyncOption func(*SyncDispatcher)

// WithLogger sets the logger used for slow-handler warnings.
func WithLogger(logger zerolog.Logger) SyncOption {
	return func(d *SyncDispatcher) {
		d.logger = logger
	}
}

// WithSlowWarning logs a warning whenever a handler runs longer than the
// given duration. Zero disables the warning.
func WithSlowWarning(threshold time.Duration) SyncOption {
	return func(d *SyncDispatcher) {
		d.slowWarn = threshold
	}
}

// Dispatch executes a handler synchronously with the given event.
// It blocks until the handler completes or panics.
func (d *SyncDispatcher) Dispatch(ctx context.Context, eventName string, event any, handler Handler) Result {
	d.dispatched.Add(1)

	result := d.executor.Execute(ctx, event, handler)

	d.totalTimeNs.Add(result.Duration.Nanoseconds())

	switch {
	case result.Skipped:
		d.skipped.Add(1)
	case result.Panicked:
		d.panicked.Add(1)
	case result.Err != nil:
		d.failed.Add(1)
	default:
		d.succeeded.Add(1)
	}

	if d.slowWarn > 0 && result.Duration > d.slowWarn {
		d.logger.Warn().
			Str("event", eventName).
			Dur("duration", result.Duration).
			Dur("threshold", d.slowWarn).
			Msg("slow event handler blocked publisher")
	}

	return result
}

// Stats returns dispatch statistics.
// Counters are read without a mutex, so values may be slightly inconsistent
// while handlers are executing concurrently.
func (d *SyncDispatcher) Stats() SyncDispatcherStats {
	dispatched := d.dispatched.Load()
	totalNs := d.totalTimeNs.Load()

	var avgNs int64
	if dispatched > 0 {
		avgNs = totalNs / int64(dispatched)
	}

	return SyncDispatcherStats{
		Dispatched:    dispatched,
		Succeeded:     d.succeeded.Load(),
		Failed:        d.failed.Load(),
		Panicked:      d.panicked.Load(),
		Skipped:       d.skipped.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// ResetStats resets all statistics to zero.
func (d *SyncDispatcher) ResetStats() {
	d.dispatched.Store(0)
	d.succeeded.Store(0)
	d.failed.Store(0)
	d.panicked.Store(0)
	d.skipped.Store(0)
	d.totalTimeNs.Store(0)
}

// SyncDispatcherStats contains statistics for a sync dispatcher.
type SyncDispatcherStats struct {
	// Dispatched is the total number of dispatch calls.
	Dispatched uint64

	// Succeeded is the number of successful handler executions.
	Succeeded uint64

	// Failed is the number of handlers that returned errors.
	Failed uint64

	// Panicked is the number of handlers that panicked.
	Panicked uint64

	// Skipped is the number of handlers skipped because the context was
	// already cancelled.
	Skipped uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
