package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func (clock *fakeClock) Now() time.Time {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	return clock.now
}

func (clock *fakeClock) Advance(duration time.Duration) {
	clock.mutex.Lock()
	defer clock.mutex.Unlock()
	clock.now = clock.now.Add(duration)
}

func TestReporterLogsOncePerInterval(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.InfoLevel)
	clock := &fakeClock{now: time.Unix(0, 0)}
	reporter := New(zap.New(core), 100, time.Second)
	reporter.now = clock.Now
	reporter.last = clock.Now()

	// Act
	reporter.Add(10)
	clock.Advance(500 * time.Millisecond)
	reporter.Add(10)
	clock.Advance(600 * time.Millisecond)
	reporter.Add(5)
	reporter.Add(5)

	// Assert
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(25), fields["processed"])
	assert.Equal(t, 25.0, fields["percent"])
	assert.Equal(t, int64(30), reporter.Processed())
}

func TestReporterIsSafeForConcurrentUse(t *testing.T) {
	reporter := New(nil, 1000, 0)

	var wait sync.WaitGroup
	for range 10 {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for range 100 {
				reporter.Add(1)
			}
		}()
	}
	wait.Wait()

	assert.Equal(t, int64(1000), reporter.Processed())
	assert.Equal(t, DefaultInterval, reporter.interval)
}

func TestReporterDone(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reporter := New(zap.New(core), 0, time.Hour)

	reporter.Done()

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "done", logs.All()[0].Message)
	assert.Equal(t, 100.0, reporter.percent(0))
}
