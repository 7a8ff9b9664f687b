package mock

import (
	"context"
	"sync"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output"
)

// Verify interface compliance in compile time.
var _ output.Output = (*Output)(nil)

// Output type is an in-memory output that passes every batch to a handler.
type Output struct {
	handler   func(ctx context.Context, dialect string, rows []*models.NamedNumber) error
	savedRows map[string]uint64
	mutex     *sync.Mutex
}

// NewOutput function creates Output object.
func NewOutput(handler func(ctx context.Context, dialect string, rows []*models.NamedNumber) error) *Output {
	return &Output{
		handler:   handler,
		savedRows: make(map[string]uint64),
		mutex:     &sync.Mutex{},
	}
}

// Setup function do nothing.
func (o *Output) Setup() error {
	return nil
}

// HandleRowsBatch function passes batch to handler and counts rows on success.
func (o *Output) HandleRowsBatch(ctx context.Context, dialect string, rows []*models.NamedNumber) error {
	if err := o.handler(ctx, dialect, rows); err != nil {
		return err
	}

	o.mutex.Lock()
	o.savedRows[dialect] += uint64(len(rows))
	o.mutex.Unlock()

	return nil
}

func (o *Output) GetSavedRowsCountByDialect() map[string]uint64 {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	result := make(map[string]uint64, len(o.savedRows))
	for dialect, count := range o.savedRows {
		result[dialect] = count
	}

	return result
}

// Teardown function do nothing.
func (o *Output) Teardown() error { return nil }
