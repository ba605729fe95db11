package poll

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

// poller implements the Poller interface
type poller struct {
	logger *logger.CanonicalLogger
	stopCh chan struct{}
	jobs   map[string]metaJob
}

// NewPoller creates a new Poller instance
func NewPoller(log *logger.CanonicalLogger) Poller {
	return &poller{
		logger: log,
		stopCh: make(chan struct{}),
		jobs:   make(map[string]metaJob),
	}
}

// Start begins running registered jobs in the background
func (p *poller) Start(ctx context.Context) error {
	go p.run(ctx)
	return nil
}

// Stop gracefully stops the poller
func (p *poller) Stop() error {
	close(p.stopCh)
	return nil
}

// run performs the scheduling loop
func (p *poller) run(ctx context.Context) {
	tickers := make(map[string]*time.Ticker)
	for name, meta := range p.jobs {
		interval := time.Duration(meta.IntervalSeconds) * time.Second
		tickers[name] = time.NewTicker(interval)
		p.logger.Info("started background job", zap.String(logger.FieldJobName, name), zap.Duration("interval", interval))
	}

	for {
		select {
		case <-p.stopCh:
			p.logger.Info("stopping poller")
			for _, ticker := range tickers {
				ticker.Stop()
			}
			return
		case <-ctx.Done():
			p.logger.Info("poller context canceled")
			for _, ticker := range tickers {
				ticker.Stop()
			}
			return
		default:
			for name, ticker := range tickers {
				select {
				case <-ticker.C:
					p.runJob(ctx, name)
				default:
				}
			}
			time.Sleep(100 * time.Millisecond) // Prevent tight loop
		}
	}
}

// runJob executes a single registered job
func (p *poller) runJob(ctx context.Context, name string) {
	meta, ok := p.jobs[name]
	if !ok {
		return
	}

	if err := meta.JobFunc(ctx); err != nil {
		p.logger.Error("background job failed", zap.String(logger.FieldJobName, name), zap.Error(err))
		return
	}
	p.logger.Debug("background job completed", zap.String(logger.FieldJobName, name))
}

// RegisterJob registers a job with its interval configuration.
// Must be called before Start.
func (p *poller) RegisterJob(name string, job JobFunc, config JobConfig) {
	if name == "" || job == nil || config.IntervalSeconds <= 0 {
		p.logger.Error("invalid job registration", zap.String(logger.FieldJobName, name), zap.Int("interval_seconds", config.IntervalSeconds))
		return
	}
	if _, exists := p.jobs[name]; exists {
		panic("job name already registered")
	}
	p.jobs[name] = metaJob{
		JobFunc:   job,
		JobConfig: config,
	}
	p.logger.Info("background job registered", zap.String(logger.FieldJobName, name), zap.Int("interval_seconds", config.IntervalSeconds))
}
