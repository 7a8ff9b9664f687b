package usecase

import (
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output"
)

// TaskConfig type is used to describe config for task.
type TaskConfig struct {
	ConversionConfig *models.ConversionConfig
	Output           output.Output
	HTTPDelivery     bool
}

// Progress type is used to represent progress of conversion.
type Progress struct {
	Done  uint64
	Total uint64
}
