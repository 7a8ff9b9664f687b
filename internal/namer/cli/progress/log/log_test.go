package log

import (
	"context"
	"testing"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/stretchr/testify/require"
)

func TestWaitAllTasks(t *testing.T) {
	manager := NewProgressLogManager(context.Background())

	manager.AddTask("standard", "Converting standard", 10)
	manager.AddTask("belgian", "Converting belgian", 4)
	manager.AddTask("empty", "Converting nothing", 0)

	// repeated task is ignored
	manager.AddTask("standard", "Converting standard", 100)

	done := make(chan struct{})

	go func() {
		manager.Wait()
		close(done)
	}()

	manager.UpdateProgress("standard", usecase.Progress{Done: 5, Total: 10})
	manager.UpdateProgress("standard", usecase.Progress{Done: 10, Total: 10})
	manager.UpdateProgress("belgian", usecase.Progress{Done: 4, Total: 4})

	// updates after completion are ignored
	manager.UpdateProgress("belgian", usecase.Progress{Done: 4, Total: 4})
	manager.UpdateProgress("unknown", usecase.Progress{Done: 1, Total: 1})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wait was not released after all tasks completed")
	}

	require.Equal(t, uint64(10), manager.tasks["standard"].current)
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	manager := NewProgressLogManager(ctx)
	manager.AddTask("standard", "Converting standard", 10)

	cancel()

	done := make(chan struct{})

	go func() {
		manager.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("wait was not released after cancel")
	}
}

func TestETA(t *testing.T) {
	manager := NewProgressLogManager(context.Background())

	tsk := &task{
		total:     100,
		current:   40,
		durations: make([]time.Duration, intervals),
		completed: make([]uint64, intervals),
	}

	require.Equal(t, "00:00:00", manager.eta(tsk))

	tsk.durations[0] = 4 * time.Second
	tsk.completed[0] = 40

	require.Equal(t, "00:01:00", manager.eta(tsk))
}
