package general

import (
	"context"
	"log/slog"
	"slices"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Verify interface compliance in compile time.
var _ output.Output = (*Output)(nil)

// Output type is implementation of output.
type Output struct {
	config           *models.OutputConfig
	dialects         []string
	fs               afero.Fs
	forceConversion  bool
	writersByDialect map[string]*DialectWriter
}

// NewOutput function creates Output object. File based writers work on fs.
func NewOutput(cfg *models.ConversionConfig, fs afero.Fs, forceConversion bool) output.Output {
	return &Output{
		config:           cfg.OutputConfig,
		dialects:         slices.Clone(cfg.Dialects),
		fs:               fs,
		forceConversion:  forceConversion,
		writersByDialect: make(map[string]*DialectWriter),
	}
}

// Setup function checks the output dir for old files and creates dialect writers.
func (o *Output) Setup() error {
	if slices.Contains(models.DiskFilesOutputTypes, o.config.Type) {
		if err := o.checkOutputConflicts(); err != nil {
			return err
		}
	}

	writersByDialect := make(map[string]*DialectWriter, len(o.dialects))

	for _, dialect := range o.dialects {
		writersByDialect[dialect] = newDialectWriter(dialect, o.config, o.fs)
	}

	o.writersByDialect = writersByDialect

	return nil
}

// HandleRowsBatch function get batch of rows from use case and send it to dialect writer.
func (o *Output) HandleRowsBatch(ctx context.Context, dialect string, rows []*models.NamedNumber) error {
	dialectWriter, ok := o.writersByDialect[dialect]
	if !ok {
		return errors.Errorf("writer for the dialect %q not found", dialect)
	}

	if err := dialectWriter.WriteRows(ctx, rows); err != nil {
		return err
	}

	slog.Debug(
		"successfully wrote batch",
		slog.String("dialect", dialect),
		slog.Int("number of lines", len(rows)),
	)

	return nil
}

func (o *Output) GetSavedRowsCountByDialect() map[string]uint64 {
	savedRowsCountByDialect := make(map[string]uint64, len(o.writersByDialect))

	for dialect, writer := range o.writersByDialect {
		savedRowsCountByDialect[dialect] = writer.getSavedRows()
	}

	return savedRowsCountByDialect
}

// Teardown function call the teardown method of each dialect writer.
func (o *Output) Teardown() error {
	var errs []error

	for dialect, dialectWriter := range o.writersByDialect {
		if err := dialectWriter.Teardown(); err != nil {
			errs = append(errs, err)

			continue
		}

		slog.Debug("successfully tore down dialect writer", slog.String("dialect", dialect))
	}

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}

// checkOutputConflicts finds files of previous conversions and handles them.
// Removes all of them if forceConversion flag is true.
// Otherwise, returns pretty error string.
func (o *Output) checkOutputConflicts() error {
	conflicts := make(map[string][]string) // key is cause, value is file names

	for _, dialect := range o.dialects {
		dialectConflicts, err := checkDirForDialect(o.fs, o.config.Dir, o.config.Type, dialect)
		if err != nil {
			return err
		}

		for cause, fileNames := range dialectConflicts {
			conflicts[cause] = append(conflicts[cause], fileNames...)
		}
	}

	return handleConflicts(o.fs, conflicts, o.forceConversion)
}
