package models

import (
	"bytes"
	"runtime"

	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/pkg/errors"
)

const (
	DefaultBatchSize = 1000
	// MaxNumber is the largest magnitude the namer accepts.
	MaxNumber = fr.Limit - 1
)

// RangeConfig type is used to describe half-open interval [from, to) of numbers.
type RangeConfig struct {
	From int64 `json:"from" yaml:"from"`
	To   int64 `json:"to"   yaml:"to"`
}

// ConversionConfig type is used to describe which numbers are named, in which dialects and where they go.
type ConversionConfig struct {
	Dialects     []string      `json:"dialects"      yaml:"dialects"`
	Numbers      []int64       `json:"numbers"       yaml:"numbers"`
	Range        *RangeConfig  `json:"range"         yaml:"range"`
	BatchSize    uint64        `json:"batch_size"    yaml:"batch_size"`
	WorkersCount int           `json:"workers_count" yaml:"workers_count"`
	ASCII        bool          `json:"ascii"         yaml:"ascii"`
	OutputConfig *OutputConfig `json:"output"        yaml:"output"`
}

func (cc *ConversionConfig) ParseFromFile(path string) error {
	err := DecodeFile(path, cc)
	if err != nil {
		return errors.WithMessagef(err, "failed to parse conversion config file %q", path)
	}

	return cc.PostProcess()
}

func (cc *ConversionConfig) ParseFromYAML(data []byte) error {
	err := DecodeReader(FormatYAML, bytes.NewReader(data), cc)
	if err != nil {
		return errors.WithMessage(err, "failed to parse YAML conversion config")
	}

	return cc.PostProcess()
}

func (cc *ConversionConfig) ParseFromJSON(data []byte) error {
	err := DecodeReader(FormatJSON, bytes.NewReader(data), cc)
	if err != nil {
		return errors.WithMessage(err, "failed to parse JSON conversion config")
	}

	return cc.PostProcess()
}

func (cc *ConversionConfig) PostProcess() error {
	err := cc.Parse()
	if err != nil {
		return errors.WithMessage(err, "failed to parse conversion config")
	}

	cc.FillDefaults()

	errs := cc.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate conversion config:\n%v", parseErrsToString(errs))
	}

	return nil
}

// Parse resolves dialect names and language tags to canonical dialect names and parses output params.
func (cc *ConversionConfig) Parse() error {
	for i, name := range cc.Dialects {
		dialect, err := fr.ParseDialect(name)
		if err != nil {
			return errors.WithMessagef(err, "dialects[%d]", i)
		}

		cc.Dialects[i] = dialect.String()
	}

	if cc.OutputConfig == nil {
		cc.OutputConfig = &OutputConfig{}
	}

	return cc.OutputConfig.Parse()
}

func (cc *ConversionConfig) FillDefaults() {
	if len(cc.Dialects) == 0 {
		cc.Dialects = []string{DefaultDialect}
	}

	if cc.BatchSize == 0 {
		cc.BatchSize = DefaultBatchSize
	}

	if cc.WorkersCount == 0 {
		cc.WorkersCount = runtime.NumCPU()
	}

	if cc.OutputConfig == nil {
		cc.OutputConfig = &OutputConfig{}
	}

	cc.OutputConfig.FillDefaults()
}

//nolint:cyclop
func (cc *ConversionConfig) Validate() []error {
	var errs []error

	seen := make(map[string]struct{}, len(cc.Dialects))

	for _, dialect := range cc.Dialects {
		if _, ok := seen[dialect]; ok {
			errs = append(errs, errors.Errorf("dialect %q is listed more than once", dialect))
		}

		seen[dialect] = struct{}{}
	}

	if cc.Count() == 0 {
		errs = append(errs, errors.New("no numbers to convert"))
	}

	for i, number := range cc.Numbers {
		if number > MaxNumber || number < -MaxNumber {
			errs = append(errs, errors.Errorf("numbers[%d] should be in [%d, %d], got %d", i, -MaxNumber, MaxNumber, number))
		}
	}

	if cc.Range != nil {
		if cc.Range.From < -MaxNumber {
			errs = append(errs, errors.Errorf("range from should be greater or equal to %d, got %d", -MaxNumber, cc.Range.From))
		}

		if cc.Range.To > MaxNumber+1 {
			errs = append(errs, errors.Errorf("range to should be less or equal to %d, got %d", MaxNumber+1, cc.Range.To))
		}

		if cc.Range.From > cc.Range.To {
			errs = append(errs, errors.Errorf(
				"range from should be less or equal to range to, got %d > %d", cc.Range.From, cc.Range.To,
			))
		}
	}

	if cc.BatchSize == 0 {
		errs = append(errs, errors.New("batch size should be greater than 0"))
	}

	if cc.WorkersCount <= 0 {
		errs = append(errs, errors.Errorf("workers count should be greater than 0, got %v", cc.WorkersCount))
	}

	if cc.OutputConfig != nil {
		if outputErrs := cc.OutputConfig.Validate(); len(outputErrs) != 0 {
			errs = append(errs, errors.New("output:"))
			errs = append(errs, outputErrs...)
		}
	}

	return errs
}

// Count returns how many numbers are named per dialect.
func (cc *ConversionConfig) Count() uint64 {
	count := uint64(len(cc.Numbers))

	if cc.Range != nil && cc.Range.To > cc.Range.From {
		count += uint64(cc.Range.To - cc.Range.From)
	}

	return count
}

// NumberAt returns the i-th number of the sequence: explicit numbers first, then the range.
func (cc *ConversionConfig) NumberAt(i uint64) int64 {
	if i < uint64(len(cc.Numbers)) {
		return cc.Numbers[i]
	}

	return cc.Range.From + int64(i-uint64(len(cc.Numbers)))
}
