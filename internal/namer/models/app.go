package models

import (
	"slices"

	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

const (
	DefaultLogFormat = "text"
	DefaultDialect   = fr.StandardDialectName
)

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat      string     `env:"FRENCHNUM_LOG_FORMAT"      json:"log_format"      yaml:"log_format"`
	DefaultDialect string     `env:"FRENCHNUM_DEFAULT_DIALECT" json:"default_dialect" yaml:"default_dialect"`
	HTTPConfig     HTTPConfig `json:"http"                     yaml:"http"`
}

func (m *AppConfig) ParseFromFile(path string) error {
	if path != "" {
		err := DecodeFile(path, m)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	} else if err := cleanenv.ReadEnv(m); err != nil {
		return errors.WithMessage(err, "failed to read app config from environment")
	}

	err := m.PostProcess()
	if err != nil {
		return errors.WithMessagef(err, "failed to post process app config file %q", path)
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = DefaultLogFormat
	}

	if m.DefaultDialect == "" {
		m.DefaultDialect = DefaultDialect
	}

	m.HTTPConfig.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{"text", "json"}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	if _, err := fr.ParseDialect(m.DefaultDialect); err != nil {
		errs = append(errs, errors.Errorf("unknown default dialect: %s", m.DefaultDialect))
	}

	httpParamsErrs := m.HTTPConfig.Validate()
	if len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("failed to validate HTTP configuration:"))
		errs = append(errs, httpParamsErrs...)
	}

	return errs
}
