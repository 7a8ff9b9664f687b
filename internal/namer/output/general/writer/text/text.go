package text

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	Extension = ".txt"
	flushRows = 1000
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to plain text file, one "<n>: <words>" line per row.
type Writer struct {
	fs         afero.Fs
	dialect    string
	outputPath string

	file   afero.File
	buffer *bufio.Writer

	bufferedRows    uint64
	writtenRowsChan chan<- uint64
	started         bool
}

// NewWriter function creates Writer object.
func NewWriter(fs afero.Fs, dialect, outputPath string, writtenRowsChan chan<- uint64) *Writer {
	return &Writer{
		fs:              fs,
		dialect:         dialect,
		outputPath:      outputPath,
		writtenRowsChan: writtenRowsChan,
	}
}

// FileName returns path of the file written for dialect.
func FileName(outputPath, dialect string) string {
	return filepath.Join(outputPath, dialect+Extension)
}

// Init function creates output file.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for dialect %q with output path %q has already been initialized",
			w.dialect, w.outputPath)
	}

	if err := w.fs.MkdirAll(w.outputPath, os.ModePerm); err != nil {
		return errors.New(err.Error())
	}

	file, err := w.fs.Create(FileName(w.outputPath, w.dialect))
	if err != nil {
		return errors.New(err.Error())
	}

	w.file = file
	w.buffer = bufio.NewWriter(file)
	w.started = true

	return nil
}

// WriteRow function writes one line to the buffer and flushes it every flushRows rows.
func (w *Writer) WriteRow(row *models.NamedNumber) error {
	if _, err := fmt.Fprintf(w.buffer, "%d: %s\n", row.Number, row.Words); err != nil {
		return errors.New(err.Error())
	}

	w.bufferedRows++

	if w.bufferedRows >= flushRows {
		return w.flush()
	}

	return nil
}

func (w *Writer) flush() error {
	if err := w.buffer.Flush(); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil && w.bufferedRows > 0 {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

// Teardown function flushes buffered lines and closes the file.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.file.Close(); err != nil {
		return errors.New(err.Error())
	}

	return nil
}
