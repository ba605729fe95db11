package poll

import (
	"context"
)

type JobConfig struct {
	IntervalSeconds int
}

type metaJob struct {
	JobFunc
	JobConfig
}

// Poller runs registered jobs on their own intervals until stopped.
// The server uses it to re-warm the menu cache in the background.
type Poller interface {
	// Start begins running registered jobs
	Start(ctx context.Context) error
	// Stop gracefully stops the poller
	Stop() error
	// RegisterJob registers a named job with its interval configuration
	RegisterJob(name string, job JobFunc, config JobConfig)
}

// JobFunc is a single unit of periodic work.
type JobFunc func(ctx context.Context) error
