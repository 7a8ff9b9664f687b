package usecase

import (
	"context"

	"github.com/frenchnum/frenchnum/internal/namer/models"
)

// UseCase interface implementation should name numbers on request and run bulk conversions.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UseCase --output=mock --outpkg=mock
type UseCase interface {
	// Setup function should configure some use case parameters.
	Setup() error
	// Name function should synchronously name numbers in the selected dialect.
	Name(dialect string, numbers []int64, ascii bool) ([]models.NamedNumber, error)
	// CreateTask function should start task to convert numbers and send them to output.
	CreateTask(ctx context.Context, config TaskConfig) (string, error)
	// GetProgress should return progress of conversion for each dialect
	GetProgress(taskID string) (map[string]Progress, error)
	// GetResult should return task status (completed or not) and an error if necessary.
	GetResult(taskID string) (bool, error)
	// WaitResult should wait conversion and return error if needed
	WaitResult(taskID string) error
	// Teardown function should wait conversion finish
	Teardown() error
}
