package parquet

import (
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/frenchnum/frenchnum/internal/namer/models"
	"github.com/frenchnum/frenchnum/internal/namer/output/general/writer"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	Extension = ".parquet"
	// flushRows is the number of rows collected in one record before it is written to the row group.
	flushRows = 5000
)

var (
	codecsByName = map[string]compress.Compression{
		"UNCOMPRESSED": compress.Codecs.Uncompressed,
		"SNAPPY":       compress.Codecs.Snappy,
		"GZIP":         compress.Codecs.Gzip,
		"LZ4RAW":       compress.Codecs.Lz4Raw,
		"ZSTD":         compress.Codecs.Zstd,
		"BROTLI":       compress.Codecs.Brotli,
	}

	// Schema is the arrow schema of every parquet file.
	Schema = arrow.NewSchema(
		[]arrow.Field{
			{Name: "number", Type: arrow.PrimitiveTypes.Int64, Nullable: false},
			{Name: "words", Type: arrow.BinaryTypes.String, Nullable: false},
		},
		nil,
	)
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to parquet file.
type Writer struct {
	fs         afero.Fs
	dialect    string
	config     *models.ParquetConfig
	outputPath string

	parquetWriter *pqarrow.FileWriter
	recordBuilder *array.RecordBuilder
	numberBuilder *array.Int64Builder
	wordsBuilder  *array.StringBuilder

	bufferedRows    uint64
	writtenRowsChan chan<- uint64
	started         bool
}

// NewWriter function creates Writer object.
func NewWriter(
	fs afero.Fs,
	dialect string,
	config *models.ParquetConfig,
	outputPath string,
	writtenRowsChan chan<- uint64,
) *Writer {
	return &Writer{
		fs:              fs,
		dialect:         dialect,
		config:          config,
		outputPath:      outputPath,
		writtenRowsChan: writtenRowsChan,
		started:         false,
	}
}

// FileName returns path of the file written for dialect.
func FileName(outputPath, dialect string) string {
	return filepath.Join(outputPath, dialect+Extension)
}

func (w *Writer) writerProperties() (*parquet.WriterProperties, error) {
	codec, ok := codecsByName[w.config.CompressionCodec]
	if !ok {
		return nil, errors.Errorf("unknown compression codec %q", w.config.CompressionCodec)
	}

	return parquet.NewWriterProperties(
		parquet.WithCompression(codec),
		parquet.WithDictionaryDefault(false),
		parquet.WithDictionaryFor("words", true),
	), nil
}

// Init function creates output file and parquet writer for it.
func (w *Writer) Init() error {
	if w.started {
		return errors.New("the writer has already been initialized")
	}

	properties, err := w.writerProperties()
	if err != nil {
		return err
	}

	if err = w.fs.MkdirAll(w.outputPath, os.ModePerm); err != nil {
		return errors.New(err.Error())
	}

	file, err := w.fs.Create(FileName(w.outputPath, w.dialect))
	if err != nil {
		return errors.New(err.Error())
	}

	// the parquet writer owns the file and closes it on Close
	parquetWriter, err := pqarrow.NewFileWriter(Schema, file, properties, pqarrow.DefaultWriterProps())
	if err != nil {
		_ = file.Close()

		return errors.New(err.Error())
	}

	w.parquetWriter = parquetWriter
	w.recordBuilder = array.NewRecordBuilder(memory.DefaultAllocator, Schema)
	w.recordBuilder.Reserve(flushRows)

	//nolint:forcetypeassert
	w.numberBuilder = w.recordBuilder.Field(0).(*array.Int64Builder)
	//nolint:forcetypeassert
	w.wordsBuilder = w.recordBuilder.Field(1).(*array.StringBuilder)

	w.started = true

	return nil
}

// WriteRow function appends row to the current record and writes the record when it is full.
func (w *Writer) WriteRow(row *models.NamedNumber) error {
	w.numberBuilder.Append(row.Number)
	w.wordsBuilder.Append(row.Words)

	w.bufferedRows++

	if w.bufferedRows >= flushRows {
		if err := w.flush(); err != nil {
			return errors.WithMessage(err, "failed to write row")
		}
	}

	return nil
}

func (w *Writer) flush() error {
	if w.bufferedRows == 0 {
		return nil
	}

	// NewRecord resets the builder, so it can be used to build a new record.
	record := w.recordBuilder.NewRecord()
	defer record.Release()

	if err := w.parquetWriter.WriteBuffered(record); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

// Teardown function writes buffered rows, closes parquet writer and the file under it.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	defer w.recordBuilder.Release()

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.parquetWriter.Close(); err != nil {
		return errors.New(err.Error())
	}

	return nil
}
