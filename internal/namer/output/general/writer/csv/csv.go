package csv

import (
	"context"
	stdCSV "encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	Extension     = ".csv"
	flushInterval = time.Second
)

var headers = []string{"number", "words"}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to CSV file.
type Writer struct {
	ctx context.Context //nolint:containedctx

	fs         afero.Fs
	dialect    string
	config     *models.CSVConfig
	outputPath string

	file          afero.File
	csvWriter     *stdCSV.Writer
	flushTicker   *time.Ticker
	flushWg       *sync.WaitGroup
	flushStopChan chan struct{}

	bufferedRows    uint64
	writtenRowsChan chan<- uint64

	writerChan  chan *models.NamedNumber
	errorsChan  chan error
	writerWg    *sync.WaitGroup
	writerMutex *sync.Mutex
	started     bool
}

// NewWriter function creates Writer object.
func NewWriter(
	ctx context.Context,
	fs afero.Fs,
	dialect string,
	config *models.CSVConfig,
	outputPath string,
	writtenRowsChan chan<- uint64,
) *Writer {
	return &Writer{
		ctx:             ctx,
		fs:              fs,
		dialect:         dialect,
		config:          config,
		outputPath:      outputPath,
		flushWg:         &sync.WaitGroup{},
		flushStopChan:   make(chan struct{}),
		writtenRowsChan: writtenRowsChan,
		writerChan:      make(chan *models.NamedNumber),
		errorsChan:      make(chan error, 1),
		writerWg:        &sync.WaitGroup{},
		writerMutex:     &sync.Mutex{},
		started:         false,
	}
}

// FileName returns path of the file written for dialect.
func FileName(outputPath, dialect string) string {
	return filepath.Join(outputPath, dialect+Extension)
}

// Init function creates output file and starts flushing and receiving row from internal queue.
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

	csvWriter := stdCSV.NewWriter(file)
	csvWriter.Comma = []rune(w.config.Delimiter)[0]

	if !w.config.WithoutHeaders {
		if err = csvWriter.Write(headers); err != nil {
			_ = file.Close()

			return errors.New(err.Error())
		}
	}

	w.file = file
	w.csvWriter = csvWriter
	w.flushTicker = time.NewTicker(flushInterval)
	w.started = true

	w.writerWg.Add(1)
	w.flushWg.Add(1)

	go w.writer()
	go w.flusher()

	return nil
}

// writer function receives row from internal queue and processes it.
func (w *Writer) writer() {
	defer w.writerWg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case row, ok := <-w.writerChan:
			if !ok {
				return
			}

			if err := w.writeRow(row); err != nil {
				w.sendError(err)

				return
			}
		}
	}
}

func (w *Writer) flusher() {
	defer w.flushWg.Done()

	for {
		select {
		case <-w.flushStopChan:
			return
		case <-w.flushTicker.C:
			if err := w.flush(); err != nil {
				w.sendError(err)

				return
			}
		}
	}
}

func (w *Writer) sendError(err error) {
	select {
	case w.errorsChan <- err:
	default:
	}
}

// writeRow function writes row to CSV buffer.
func (w *Writer) writeRow(row *models.NamedNumber) error {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	if err := w.csvWriter.Write([]string{strconv.FormatInt(row.Number, 10), row.Words}); err != nil {
		return errors.New(err.Error())
	}

	w.bufferedRows++

	return nil
}

// WriteRow function sends row to internal queue.
func (w *Writer) WriteRow(row *models.NamedNumber) error {
	select {
	case <-w.ctx.Done():
		return errors.Errorf("failed to write row: %s", w.ctx.Err().Error())
	case err := <-w.errorsChan:
		return errors.Errorf("failed to write row: %s", err)
	case w.writerChan <- row:
	}

	return nil
}

func (w *Writer) flush() error {
	w.writerMutex.Lock()
	defer w.writerMutex.Unlock()

	w.csvWriter.Flush()

	if err := w.csvWriter.Error(); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil && w.bufferedRows > 0 {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

// Teardown function waits recording finish, flushes csv writer buffer and closes opened file descriptor.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	close(w.writerChan)
	w.writerWg.Wait()

	w.flushTicker.Stop()
	close(w.flushStopChan)
	w.flushWg.Wait()

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.file.Close(); err != nil {
		return errors.New(err.Error())
	}

	select {
	case err := <-w.errorsChan:
		return errors.Errorf("failed to write row: %s", err)
	default:
		return nil
	}
}
