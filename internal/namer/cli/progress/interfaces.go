package progress

import "github.com/frenchnum/frenchnum/internal/namer/usecase"

// Tracker interface implementation should display conversion progress, one task per dialect.
type Tracker interface {
	// AddTask should register a task once, later calls with the same name are ignored.
	AddTask(name string, title string, total uint64)
	// UpdateProgress should show the latest progress of a registered task.
	UpdateProgress(name string, progress usecase.Progress)
	// Wait should block until every task is done or tracking is canceled.
	Wait()
}
