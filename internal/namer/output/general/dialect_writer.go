package general

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/csv"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/devnull"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/http"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/parquet"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer/text"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const buffer = 100

// DialectWriter type owns the writer of one dialect and counts rows that reached the destination.
type DialectWriter struct {
	dialect string
	config  *models.OutputConfig
	fs      afero.Fs

	dataWriter writer.Writer

	writtenRows     *atomic.Uint64
	writtenRowsWg   *sync.WaitGroup
	writtenRowsChan chan uint64
}

func newDialectWriter(dialect string, config *models.OutputConfig, fs afero.Fs) *DialectWriter {
	dialectWriter := &DialectWriter{
		dialect:         dialect,
		config:          config,
		fs:              fs,
		writtenRows:     &atomic.Uint64{},
		writtenRowsWg:   &sync.WaitGroup{},
		writtenRowsChan: make(chan uint64, buffer),
	}

	dialectWriter.writtenRowsWg.Add(1)

	go dialectWriter.updateWrittenRows()

	return dialectWriter
}

func (w *DialectWriter) updateWrittenRows() {
	defer w.writtenRowsWg.Done()

	for rows := range w.writtenRowsChan {
		w.writtenRows.Add(rows)
	}
}

// WriteRows function sends rows to the dialect writer, creating it on the first call.
// It should not be called concurrently, batches of one dialect arrive in order.
func (w *DialectWriter) WriteRows(ctx context.Context, rows []*models.NamedNumber) error {
	if w.dataWriter == nil {
		dataWriter, err := w.newWriter(ctx)
		if err != nil {
			return err
		}

		if err = dataWriter.Init(); err != nil {
			return errors.WithMessagef(err, "failed to init writer for dialect %q", w.dialect)
		}

		w.dataWriter = dataWriter
	}

	for _, row := range rows {
		if err := w.dataWriter.WriteRow(row); err != nil {
			return err
		}
	}

	return nil
}

// newWriter function creates writer.Writer object based on output type from models.OutputConfig.
func (w *DialectWriter) newWriter(ctx context.Context) (writer.Writer, error) {
	var dataWriter writer.Writer

	switch w.config.Type {
	case "devnull":
		dataWriter = devnull.NewWriter(w.dialect, w.config.DevNullParams, w.writtenRowsChan)
	case "text":
		dataWriter = text.NewWriter(w.fs, w.dialect, w.config.Dir, w.writtenRowsChan)
	case "csv":
		dataWriter = csv.NewWriter(ctx, w.fs, w.dialect, w.config.CSVParams, w.config.Dir, w.writtenRowsChan)
	case "parquet":
		dataWriter = parquet.NewWriter(w.fs, w.dialect, w.config.ParquetParams, w.config.Dir, w.writtenRowsChan)
	case "http":
		dataWriter = http.NewWriter(ctx, w.dialect, w.config.HTTPParams, w.writtenRowsChan)
	default:
		return nil, errors.Errorf("unknown output type: %q", w.config.Type)
	}

	return dataWriter, nil
}

// Teardown function finishes the writer and stops counting written rows.
func (w *DialectWriter) Teardown() error {
	var err error

	if w.dataWriter != nil {
		err = w.dataWriter.Teardown()
	}

	close(w.writtenRowsChan)
	w.writtenRowsWg.Wait()

	if err != nil {
		return errors.WithMessagef(err, "failed to teardown writer for dialect %q", w.dialect)
	}

	return nil
}

func (w *DialectWriter) getSavedRows() uint64 {
	return w.writtenRows.Load()
}
