package log

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/cli/progress"
	"github.com/frenchnum/frenchnum/internal/namer/cli/utils"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
)

// Verify interface compliance in compile time.
var _ progress.Tracker = (*ProgressLogManager)(nil)

const (
	intervals = 50
	template  = "%s %d%% (%d / %d) ETA %s"
)

// task type used to describe dialect conversion for tracking.
type task struct {
	title           string
	total           uint64
	current         uint64
	lastUpdate      time.Time
	durations       []time.Duration
	completed       []uint64
	currentInterval uint
}

// isDone checks if task is ready.
func (t *task) isDone() bool {
	return t.current >= t.total
}

// ProgressLogManager type is implementation of progress.Tracker that reports progress with log records.
type ProgressLogManager struct {
	ctx   context.Context //nolint:containedctx
	mutex sync.Mutex
	tasks map[string]*task
	wg    sync.WaitGroup
}

// NewProgressLogManager creates ProgressLogManager object.
func NewProgressLogManager(ctx context.Context) *ProgressLogManager {
	return &ProgressLogManager{
		ctx:   ctx,
		tasks: make(map[string]*task),
	}
}

// AddTask adds task to manager. Tasks with zero total are never waited for.
func (p *ProgressLogManager) AddTask(name, title string, total uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.tasks[name]; ok {
		return
	}

	p.tasks[name] = &task{
		title:      title,
		total:      total,
		lastUpdate: time.Now(),
		durations:  make([]time.Duration, intervals),
		completed:  make([]uint64, intervals),
	}

	if total > 0 {
		p.wg.Add(1)
	}
}

// UpdateProgress logs progress for task with passed name.
func (p *ProgressLogManager) UpdateProgress(name string, progress usecase.Progress) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	t, ok := p.tasks[name]
	if !ok || t.isDone() || progress.Done < t.current {
		return
	}

	p.updateIntervals(t, progress.Done)

	t.current = min(progress.Done, t.total)
	t.lastUpdate = time.Now()

	percentage := utils.GetPercentage(t.total, t.current)
	averageETA := p.eta(t)

	slog.Info(fmt.Sprintf(template, t.title, percentage, t.current, t.total, averageETA))

	if t.isDone() {
		p.wg.Done()
	}
}

// Wait waits for all tasks to complete or for context cancellation.
func (p *ProgressLogManager) Wait() {
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-p.ctx.Done():
	case <-done:
	}
}

func (p *ProgressLogManager) updateIntervals(t *task, done uint64) {
	t.durations[t.currentInterval] = time.Since(t.lastUpdate)
	t.completed[t.currentInterval] = done - t.current
	t.currentInterval = (t.currentInterval + 1) % intervals
}

//nolint:mnd
func (p *ProgressLogManager) eta(t *task) string {
	var (
		remaining        time.Duration
		overallDuration  time.Duration
		overallCompleted uint64
	)

	for i := range intervals {
		overallDuration += t.durations[i]
		overallCompleted += t.completed[i]
	}

	if overallCompleted > 0 {
		averageDurationPerItem := math.Round(float64(overallDuration) / float64(overallCompleted))
		remaining = time.Duration((t.total - t.current) * uint64(averageDurationPerItem))
	}

	hours := int64(remaining / time.Hour)
	minutes := int64(remaining/time.Minute) % 60
	seconds := int64(remaining/time.Second) % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Write writes to default stdout.
func (p *ProgressLogManager) Write(b []byte) (int, error) {
	return os.Stdout.Write(b) //nolint:wrapcheck
}
