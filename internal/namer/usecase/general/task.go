package general

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/common"
	"github.com/frenchnum/frenchnum/internal/namer/locale"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/frenchnum/frenchnum/internal/namer/usecase/general/progress"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const TTL = 5 * time.Minute

// Task type is implementation of one conversion task from usecase.
type Task struct {
	config      *models.ConversionConfig
	ID          string
	output      output.Output
	namers      map[string]locale.Namer
	progress    *progress.Handler
	runMutex    *sync.Mutex
	statusMutex *sync.RWMutex
	finished    bool
	error       error
}

// batchJob is one consecutive slice of the number sequence for one dialect.
type batchJob struct {
	ctx     context.Context //nolint:containedctx
	syncer  *common.WorkerSyncer
	dialect string
	namer   locale.Namer
	from    uint64
	to      uint64
}

// NewTask function creates context for one conversion job.
func NewTask(cfg usecase.TaskConfig, namers map[string]locale.Namer) (*Task, error) {
	taskID := uuid.NewString()

	if cfg.HTTPDelivery {
		outputDir := cfg.ConversionConfig.OutputConfig.Dir
		cfg.ConversionConfig.OutputConfig.Dir = filepath.Join(outputDir, taskID)
	}

	if err := cfg.Output.Setup(); err != nil {
		return nil, errors.WithMessage(err, "failed to setup output")
	}

	return &Task{
		config:      cfg.ConversionConfig,
		ID:          taskID,
		output:      cfg.Output,
		namers:      namers,
		progress:    progress.NewHandler(),
		runMutex:    &sync.Mutex{},
		statusMutex: &sync.RWMutex{},
		finished:    false,
		error:       nil,
	}, nil
}

// RunTask function starts conversion in background; callback runs TTL after the task ends.
func (t *Task) RunTask(ctx context.Context, callback func()) {
	started := make(chan struct{})

	go func() {
		t.runMutex.Lock()
		defer t.runMutex.Unlock()

		t.statusMutex.Lock()
		t.finished = false
		t.error = nil
		t.statusMutex.Unlock()

		started <- struct{}{}

		err := t.convertAndSaveNumbers(ctx)

		t.statusMutex.Lock()
		t.finished = true
		t.error = err
		t.statusMutex.Unlock()

		time.AfterFunc(TTL, callback)
	}()

	<-started
}

func (t *Task) GetProgress() map[string]usecase.Progress {
	return t.progress.GetAll()
}

func (t *Task) GetError() (bool, error) {
	t.statusMutex.RLock()
	defer t.statusMutex.RUnlock()

	return t.finished, t.error
}

func (t *Task) WaitError() error {
	t.runMutex.Lock()
	defer t.runMutex.Unlock()

	return t.error
}

// convertAndSaveNumbers function names the whole sequence for every dialect.
func (t *Task) convertAndSaveNumbers(ctx context.Context) (err error) {
	ctx, cancelCtx := context.WithCancelCause(ctx)
	defer func() { cancelCtx(err) }()

	defer func() {
		tErr := t.output.Teardown()
		if tErr == nil {
			return
		}

		if err != nil {
			slog.Error("failed to teardown output", slog.Any("error", tErr))
		} else {
			err = errors.WithMessage(tErr, "failed to teardown output")
		}
	}()

	pool := common.NewWorkerPool(t.convertAndSaveBatch, t.config.WorkersCount)
	pool.Start()
	defer pool.Stop()

	total := t.config.Count()

	for _, dialect := range t.config.Dialects {
		namer := t.namers[dialect]

		pool.Add(1)

		go func() {
			defer pool.Done()

			slog.Debug("start naming numbers", "dialect", dialect)
			t.progress.Create(dialect, total)

			outputSyncer := common.NewSyncer()

			for _, batch := range common.Batches(total, t.config.BatchSize) {
				if common.CtxClosed(ctx) {
					return
				}

				pool.Submit(batchJob{
					ctx:     ctx,
					syncer:  outputSyncer.WorkerSyncer(),
					dialect: dialect,
					namer:   namer,
					from:    batch[0],
					to:      batch[1],
				})
			}
		}()
	}

	if err = pool.WaitOrError(); err != nil {
		err = errors.WithMessage(err, "failed to name numbers")
		cancelCtx(err)

		return err
	}

	if common.CtxClosed(ctx) {
		err = &common.ContextCancelError{}

		return err
	}

	slog.Debug("naming numbers for all dialects finished")

	return nil
}

// convertAndSaveBatch function names one batch and hands it to output after the previous batch of the dialect.
func (t *Task) convertAndSaveBatch(job batchJob) error {
	rows := make([]*models.NamedNumber, 0, job.to-job.from)

	for i := job.from; i < job.to; i++ {
		if common.CtxClosed(job.ctx) {
			return &common.ContextCancelError{}
		}

		number := t.config.NumberAt(i)

		words, err := job.namer.Name(number)
		if err != nil {
			return errors.WithMessagef(err, "failed to name number %d", number)
		}

		if t.config.ASCII {
			words = locale.FoldASCII(words)
		}

		rows = append(rows, &models.NamedNumber{Number: number, Words: words})
	}

	// the next link is released only after a successful write, a failed task is unblocked by cancellation
	if err := job.syncer.WaitPrevious(job.ctx); err != nil {
		return err
	}

	if err := t.output.HandleRowsBatch(job.ctx, job.dialect, rows); err != nil {
		return errors.WithMessage(err, "failed to save batch to output")
	}

	job.syncer.Done()

	t.progress.Add(job.dialect, uint64(len(rows)))

	return nil
}
