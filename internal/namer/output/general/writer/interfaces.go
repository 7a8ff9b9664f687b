package writer

import (
	"github.com/frenchnum/frenchnum/internal/namer/models"
)

// Writer interface implementation should deliver the rows of one dialect to a destination.
// Rows arrive in the order they were named.
type Writer interface {
	// Init should open the destination, it is called once before the first row.
	Init() error
	// WriteRow should accept a row, it may buffer it.
	WriteRow(row *models.NamedNumber) error
	// Teardown should flush buffered rows and release the destination.
	Teardown() error
}
