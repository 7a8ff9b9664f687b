package devnull

import (
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of null writer.
type Writer struct {
	dialect         string
	handler         func(row *models.NamedNumber, dialect string) error
	writtenRowsChan chan<- uint64
}

// NewWriter function creates Writer object.
func NewWriter(dialect string, config *models.DevNullConfig, writtenRowsChan chan<- uint64) *Writer {
	var handler func(row *models.NamedNumber, dialect string) error
	if config != nil {
		handler = config.Handler
	}

	return &Writer{
		dialect:         dialect,
		handler:         handler,
		writtenRowsChan: writtenRowsChan,
	}
}

// Init does nothing.
func (w *Writer) Init() error {
	return nil
}

// WriteRow passes row to handler if it is set.
func (w *Writer) WriteRow(row *models.NamedNumber) error {
	if w.handler != nil {
		if err := w.handler(row, w.dialect); err != nil {
			return err
		}
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- 1
	}

	return nil
}

// Teardown does nothing.
func (w *Writer) Teardown() error {
	return nil
}
