package general

import (
	"context"
	"log/slog"
	"sync"

	"github.com/frenchnum/frenchnum/internal/namer/locale"
	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/pkg/errors"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCase type is implementation of common use case.
type UseCase struct {
	defaultDialect string
	namers         map[string]locale.Namer
	tasks          map[string]*Task
	mutex          *sync.RWMutex
}

// UseCaseConfig type is used to describe config for common usecase.
type UseCaseConfig struct {
	// DefaultDialect is used when a request does not name a dialect.
	DefaultDialect string
}

// NewUseCase function creates UseCase object.
func NewUseCase(cfg UseCaseConfig) *UseCase {
	defaultDialect := cfg.DefaultDialect
	if defaultDialect == "" {
		defaultDialect = models.DefaultDialect
	}

	return &UseCase{
		defaultDialect: defaultDialect,
		namers:         make(map[string]locale.Namer),
		tasks:          make(map[string]*Task),
		mutex:          &sync.RWMutex{},
	}
}

// Setup function builds one namer per dialect. Namers are read-only and shared by all tasks.
func (uc *UseCase) Setup() error {
	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	for _, dialect := range []fr.Dialect{fr.StandardDialect, fr.BelgianDialect} {
		namer, err := fr.NewNamer(dialect)
		if err != nil {
			return errors.WithMessagef(err, "failed to create namer for dialect %q", dialect)
		}

		uc.namers[namer.Dialect()] = namer
	}

	if _, err := uc.namer(uc.defaultDialect); err != nil {
		return errors.WithMessage(err, "invalid default dialect")
	}

	return nil
}

// Name function names numbers in the selected dialect; an empty dialect selects the default one.
func (uc *UseCase) Name(dialect string, numbers []int64, ascii bool) ([]models.NamedNumber, error) {
	if dialect == "" {
		dialect = uc.defaultDialect
	}

	uc.mutex.RLock()
	namer, err := uc.namer(dialect)
	uc.mutex.RUnlock()

	if err != nil {
		return nil, err
	}

	words, err := namer.ConvertAll(numbers)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rows := make([]models.NamedNumber, len(numbers))

	for i, number := range numbers {
		if ascii {
			words[i] = locale.FoldASCII(words[i])
		}

		rows[i] = models.NamedNumber{Number: number, Words: words[i]}
	}

	slog.Debug("numbers named", slog.String("dialect", namer.Dialect()), slog.Int("count", len(rows)))

	return rows, nil
}

// namer resolves a dialect name or language tag to a ready namer. Callers hold the mutex.
func (uc *UseCase) namer(dialect string) (locale.Namer, error) {
	parsed, err := fr.ParseDialect(dialect)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	namer, ok := uc.namers[parsed.String()]
	if !ok {
		return nil, errors.Errorf("use case is not set up for dialect %q", parsed)
	}

	return namer, nil
}

// CreateTask function receives conversion config from delivery, names numbers and sends them to output.
// It works asynchronously and returns string task ID to get results later.
func (uc *UseCase) CreateTask(ctx context.Context, config usecase.TaskConfig) (string, error) {
	namers := make(map[string]locale.Namer, len(config.ConversionConfig.Dialects))

	uc.mutex.RLock()
	for _, dialect := range config.ConversionConfig.Dialects {
		namer, err := uc.namer(dialect)
		if err != nil {
			uc.mutex.RUnlock()

			return "", err
		}

		namers[dialect] = namer
	}
	uc.mutex.RUnlock()

	task, err := NewTask(config, namers)
	if err != nil {
		return "", err
	}

	uc.mutex.Lock()
	uc.tasks[task.ID] = task
	uc.mutex.Unlock()

	task.RunTask(ctx, func() { uc.removeTask(task.ID) })

	return task.ID, nil
}

// GetProgress function returns current progresses of task by ID.
func (uc *UseCase) GetProgress(taskID string) (map[string]usecase.Progress, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}

	return task.GetProgress(), nil
}

// GetResult function returns completion flag and error of task by ID.
func (uc *UseCase) GetResult(taskID string) (bool, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return false, err
	}

	return task.GetError()
}

// WaitResult function waits task by ID end and returns it error.
func (uc *UseCase) WaitResult(taskID string) error {
	task, err := uc.getTask(taskID)
	if err != nil {
		return err
	}

	return task.WaitError()
}

func (uc *UseCase) getTask(taskID string) (*Task, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return nil, errors.Errorf("no task with id %s", taskID)
	}

	return task, nil
}

// removeTask function removes task from local storage.
func (uc *UseCase) removeTask(taskID string) {
	uc.mutex.Lock()
	delete(uc.tasks, taskID)
	uc.mutex.Unlock()
}

// Teardown function waits all conversion processes.
func (uc *UseCase) Teardown() error {
	uc.mutex.RLock()
	tasks := make([]*Task, 0, len(uc.tasks))

	for _, task := range uc.tasks {
		tasks = append(tasks, task)
	}
	uc.mutex.RUnlock()

	for _, task := range tasks {
		_ = task.WaitError()
	}

	return nil
}
