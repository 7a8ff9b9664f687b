package models

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Field interface is used to summarize model field methods.
type Field interface {
	// Parse function should parse all fields with "any" type
	Parse() error
	// FillDefaults function should fill all default values
	FillDefaults()
	// Validate function should validate all values and return all list of all occurred errors
	Validate() []error
}

func FieldParse(field Field) error {
	if !reflect.ValueOf(field).IsNil() {
		if err := field.Parse(); err != nil {
			return err
		}
	}

	return nil
}

func FieldFillDefaults(field Field) {
	if !reflect.ValueOf(field).IsNil() {
		field.FillDefaults()
	}
}

func FieldValidate(field Field) []error {
	if !reflect.ValueOf(field).IsNil() {
		if err := field.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ConfigExtensions lists file extensions accepted for config files.
var ConfigExtensions = []string{".yml", ".yaml", ".json"}

// FormatFromPath selects the config format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Errorf("unknown file format %q, supported: %v", ext, ConfigExtensions)
	}
}

// DecodeFile reads a YAML or JSON file selected by extension into v and applies environment overrides.
func DecodeFile(path string, v any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.New(err.Error())
	}
	defer f.Close()

	return DecodeReader(format, f, v)
}

// DecodeReader decodes r into v rejecting unknown fields. Values from the environment
// override decoded ones, and an empty document leaves v untouched.
func DecodeReader(format Format, r io.Reader, v any) error {
	var err error

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		err = decoder.Decode(v)
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(v)
	default:
		return errors.Errorf("format %q is not supported", format)
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return errors.New(err.Error())
	}

	if err = cleanenv.ReadEnv(v); err != nil {
		return errors.New(err.Error())
	}

	return nil
}

func parseErrsToString(errs []error) string {
	var sb strings.Builder

	for i, err := range errs {
		v := err.Error()

		if !strings.HasSuffix(v, ":") {
			sb.WriteString("- ")
		}

		sb.WriteString(v)

		if i != len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
