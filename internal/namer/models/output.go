package models

import (
	"net/url"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/frenchnum/frenchnum/internal/namer/common"
	"github.com/pkg/errors"
)

const (
	DefaultOutputDir      = "output"
	DefaultOutputType     = "text"
	defaultFormatTemplate = `{ "dialect": "{{ .Dialect }}", "rows": {{ json .Rows }} }`
)

var OutputTypes = []string{"text", "csv", "parquet", "http", "devnull"}
var DiskFilesOutputTypes = []string{"text", "csv", "parquet"} // output types that actually create files on disk

// OutputConfig type is used to describe where and how named numbers are written.
type OutputConfig struct {
	Type          string         `json:"type"   yaml:"type"`
	Dir           string         `json:"dir"    yaml:"dir"`
	Params        any            `json:"params" yaml:"params"`
	DevNullParams *DevNullConfig `json:"-"      yaml:"-"`
	CSVParams     *CSVConfig     `json:"-"      yaml:"-"`
	HTTPParams    *HTTPParams    `json:"-"      yaml:"-"`
	ParquetParams *ParquetConfig `json:"-"      yaml:"-"`
}

func (c *OutputConfig) Parse() error {
	var err error

	switch c.Type {
	case "csv":
		c.CSVParams, err = common.AnyToStruct[CSVConfig](c.Params)
	case "devnull":
		c.DevNullParams, err = common.AnyToStruct[DevNullConfig](c.Params)
	case "http":
		c.HTTPParams, err = common.AnyToStruct[HTTPParams](c.Params)
	case "parquet":
		c.ParquetParams, err = common.AnyToStruct[ParquetConfig](c.Params)
	}

	if err != nil {
		return errors.WithMessagef(err, "%q output params", c.Type)
	}

	if err = FieldParse(c.CSVParams); err != nil {
		return errors.WithMessage(err, "csv params")
	}

	if err = FieldParse(c.DevNullParams); err != nil {
		return errors.WithMessage(err, "devnull params")
	}

	if err = FieldParse(c.HTTPParams); err != nil {
		return errors.WithMessage(err, "http params")
	}

	if err = FieldParse(c.ParquetParams); err != nil {
		return errors.WithMessage(err, "parquet params")
	}

	return nil
}

func (c *OutputConfig) FillDefaults() {
	if c.Type == "" {
		c.Type = DefaultOutputType
	}

	if c.Dir == "" {
		c.Dir = DefaultOutputDir
	}

	FieldFillDefaults(c.CSVParams)

	FieldFillDefaults(c.DevNullParams)

	FieldFillDefaults(c.HTTPParams)

	FieldFillDefaults(c.ParquetParams)
}

func (c *OutputConfig) Validate() []error {
	var errs []error

	if !slices.Contains(OutputTypes, c.Type) {
		errs = append(errs, errors.Errorf("unknown output type: %s", c.Type))
	}

	if csvParamsErrs := FieldValidate(c.CSVParams); len(csvParamsErrs) != 0 {
		errs = append(errs, errors.New("csv params:"))
		errs = append(errs, csvParamsErrs...)
	}

	if devNullParamsErrs := FieldValidate(c.DevNullParams); len(devNullParamsErrs) != 0 {
		errs = append(errs, errors.New("devnull params:"))
		errs = append(errs, devNullParamsErrs...)
	}

	if httpParamsErrs := FieldValidate(c.HTTPParams); len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("http params:"))
		errs = append(errs, httpParamsErrs...)
	}

	if parquetParamsErrs := FieldValidate(c.ParquetParams); len(parquetParamsErrs) != 0 {
		errs = append(errs, errors.New("parquet params:"))
		errs = append(errs, parquetParamsErrs...)
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*DevNullConfig)(nil)

// DevNullConfig type used to describe output config for devnull implementation.
type DevNullConfig struct {
	Handler func(row *NamedNumber, dialect string) error `json:"-" yaml:"-"`
}

func (c *DevNullConfig) Parse() error { return nil }

func (c *DevNullConfig) FillDefaults() {}

func (c *DevNullConfig) Validate() []error { return nil }

// Verify interface compliance in compile time.
var _ Field = (*CSVConfig)(nil)

// CSVConfig type used to describe output config for CSV implementation.
type CSVConfig struct {
	Delimiter      string `json:"delimiter"       yaml:"delimiter"`
	WithoutHeaders bool   `json:"without_headers" yaml:"without_headers"`
}

func (c *CSVConfig) Parse() error { return nil }

func (c *CSVConfig) FillDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

func (c *CSVConfig) Validate() []error {
	var errs []error

	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, errors.Errorf("the delimiter must consist of one character, got %v", c.Delimiter))
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*HTTPParams)(nil)

// HTTPParams type used to describe output config for HTTP implementation.
type HTTPParams struct {
	Endpoint       string            `json:"endpoint"        yaml:"endpoint"`
	Timeout        time.Duration     `json:"timeout"         yaml:"timeout"`
	BatchSize      int               `json:"batch_size"      yaml:"batch_size"`
	WorkersCount   int               `json:"workers_count"   yaml:"workers_count"`
	Headers        map[string]string `json:"headers"         yaml:"headers"`
	FormatTemplate string            `json:"format_template" yaml:"format_template"`
}

func (c *HTTPParams) Parse() error { return nil }

func (c *HTTPParams) FillDefaults() {
	if c.Timeout == 0 {
		c.Timeout = time.Minute
	}

	if c.BatchSize == 0 {
		c.BatchSize = 1000
	}

	if c.WorkersCount == 0 {
		c.WorkersCount = 1
	}

	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}

	if c.FormatTemplate == "" {
		c.FormatTemplate = defaultFormatTemplate
	}
}

func (c *HTTPParams) Validate() []error {
	var errs []error

	if c.Endpoint == "" {
		errs = append(errs, errors.New("endpoint is required"))
	} else if _, err := url.ParseRequestURI(c.Endpoint); err != nil {
		errs = append(errs, errors.New(err.Error()))
	}

	if c.Timeout < 0 {
		errs = append(errs, errors.Errorf("timeout should be greater or equal to 0, got %v", c.Timeout))
	}

	if c.BatchSize <= 0 {
		errs = append(errs, errors.Errorf("batch size should be greater than 0, got %v", c.BatchSize))
	}

	if c.WorkersCount <= 0 {
		errs = append(errs, errors.Errorf("workers count should be greater than 0, got %v", c.WorkersCount))
	}

	return errs
}

// Verify interface compliance in compile time.
var _ Field = (*ParquetConfig)(nil)

// ParquetConfig type used to describe output config for parquet implementation.
type ParquetConfig struct {
	CompressionCodec string `json:"compression_codec" yaml:"compression_codec"`
}

var ParquetSupportedCompressionCodecs = []string{"UNCOMPRESSED", "SNAPPY", "GZIP", "LZ4RAW", "ZSTD", "BROTLI"}

func (c *ParquetConfig) Parse() error { return nil }

func (c *ParquetConfig) FillDefaults() {
	if c.CompressionCodec == "" {
		c.CompressionCodec = "UNCOMPRESSED"
	}
}

func (c *ParquetConfig) Validate() []error {
	var errs []error

	if !slices.Contains(ParquetSupportedCompressionCodecs, c.CompressionCodec) {
		errs = append(errs, errors.Errorf("unknown compression codec %v, supported %v",
			c.CompressionCodec, ParquetSupportedCompressionCodecs))
	}

	return errs
}
