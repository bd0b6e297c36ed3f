package progress

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const DefaultInterval = 10 * time.Second

// Reporter logs how many of total items have been processed, at most once per interval.
// It's safe for concurrent use.
type Reporter struct {
	logger   *zap.Logger
	total    int
	interval time.Duration
	now      func() time.Time

	processed atomic.Int64
	mutex     sync.Mutex
	last      time.Time
}

func New(logger *zap.Logger, total int, interval time.Duration) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	reporter := &Reporter{
		logger:   logger,
		total:    total,
		interval: interval,
		now:      time.Now,
	}
	reporter.last = reporter.now()
	return reporter
}

// Add records n more processed items
func (reporter *Reporter) Add(n int) {
	processed := reporter.processed.Add(int64(n))

	now := reporter.now()
	reporter.mutex.Lock()
	if now.Sub(reporter.last) < reporter.interval {
		reporter.mutex.Unlock()
		return
	}
	reporter.last = now
	reporter.mutex.Unlock()

	reporter.logger.Info("progress",
		zap.Int64("processed", processed),
		zap.Int("total", reporter.total),
		zap.Float64("percent", reporter.percent(processed)),
	)
}

func (reporter *Reporter) Processed() int64 {
	return reporter.processed.Load()
}

// Done logs the final count
func (reporter *Reporter) Done() {
	processed := reporter.processed.Load()
	reporter.logger.Info("done",
		zap.Int64("processed", processed),
		zap.Int("total", reporter.total),
	)
}

func (reporter *Reporter) percent(processed int64) float64 {
	if reporter.total == 0 {
		return 100
	}
	return float64(processed) / float64(reporter.total) * 100
}
