package output

import (
	"context"

	"github.com/frenchnum/frenchnum/internal/namer/models"
)

// Output interface implementation should send all rows
// from use case to appropriate dialect writer.
type Output interface {
	// Setup function should configure some output parameters.
	Setup() error
	// HandleRowsBatch function should receive batch of rows from
	// use case and send it to appropriate dialect writer.
	HandleRowsBatch(ctx context.Context, dialect string, rows []*models.NamedNumber) error
	// GetSavedRowsCountByDialect function should return number of saved rows for each dialect
	GetSavedRowsCountByDialect() map[string]uint64
	// Teardown function should call the teardown method of each dialect writer.
	Teardown() error
}
