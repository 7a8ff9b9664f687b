package models

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, pattern, content string) string {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)

	_, err = tempFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())

	return tempFile.Name()
}

func TestAppConfigYAMLParse(t *testing.T) {
	type testCase struct {
		name     string
		content  string
		env      map[string]string
		expected AppConfig
		wantErr  error
	}

	defaultHTTPConfig := HTTPConfig{
		ListenAddress: ":8080",
		ReadTimeout:   time.Minute,
		WriteTimeout:  time.Minute,
		IdleTimeout:   time.Minute,
	}

	testCases := []testCase{
		{
			name:    "EmptyConfig",
			content: "{}",
			expected: AppConfig{
				LogFormat:      "text",
				DefaultDialect: "standard",
				HTTPConfig:     defaultHTTPConfig,
			},
		},
		{
			name:    "EmptyFile",
			content: "",
			expected: AppConfig{
				LogFormat:      "text",
				DefaultDialect: "standard",
				HTTPConfig:     defaultHTTPConfig,
			},
		},
		{
			name: "HttpFullConfig",
			content: `
default_dialect: fr-BE
http:
    listen_address: "127.4.4.2:80"
    read_timeout: 60s
    write_timeout: 1m
    idle_timeout: 30000ms
`,
			expected: AppConfig{
				LogFormat:      "text",
				DefaultDialect: "fr-BE",
				HTTPConfig: HTTPConfig{
					ListenAddress: "127.4.4.2:80",
					ReadTimeout:   time.Minute,
					WriteTimeout:  time.Minute,
					IdleTimeout:   30 * time.Second,
				},
			},
		},
		{
			name:    "EnvironmentOverride",
			content: "log_format: text",
			env: map[string]string{
				"FRENCHNUM_LOG_FORMAT":          "json",
				"FRENCHNUM_DEFAULT_DIALECT":     "belgian",
				"FRENCHNUM_HTTP_LISTEN_ADDRESS": ":9090",
			},
			expected: AppConfig{
				LogFormat:      "json",
				DefaultDialect: "belgian",
				HTTPConfig: HTTPConfig{
					ListenAddress: ":9090",
					ReadTimeout:   time.Minute,
					WriteTimeout:  time.Minute,
					IdleTimeout:   time.Minute,
				},
			},
		},
		{
			name: "AllPossibleErrors",
			content: `
log_format: yaml
default_dialect: swiss
http:
    listen_address: "127.4.4.2:80"
    read_timeout: -1s
    write_timeout: -1m
    idle_timeout: -1ms
`,
			wantErr: errors.New(
				`failed to validate app config:
- unknown log format: yaml
- unknown default dialect: swiss
failed to validate HTTP configuration:
- read timeout should be greater than 0, got -1s
- write timeout should be greater than 0, got -1m0s
- idle timeout should be greater than 0, got -1ms`,
			),
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		for key, value := range tc.env {
			t.Setenv(key, value)
		}

		path := writeConfig(t, "frenchnum-config-*.yml", tc.content)

		var cfg AppConfig

		err := cfg.ParseFromFile(path)
		if tc.wantErr != nil {
			// unwrap error to exclude path to config file
			require.EqualError(t, errors.Unwrap(err), tc.wantErr.Error())

			return
		}

		require.NoError(t, err)
		require.Equal(t, tc.expected, cfg)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestAppConfigWithoutFile(t *testing.T) {
	t.Setenv("FRENCHNUM_LOG_FORMAT", "json")

	var cfg AppConfig

	require.NoError(t, cfg.ParseFromFile(""))
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "standard", cfg.DefaultDialect)
}

func TestAppConfigUnknownField(t *testing.T) {
	path := writeConfig(t, "frenchnum-config-*.yml", "unknown_field: 1")

	var cfg AppConfig

	require.Error(t, cfg.ParseFromFile(path))
}

//nolint:maintidx
func TestConversionConfigYAMLParse(t *testing.T) {
	type testCase struct {
		name     string
		content  string
		wantErr  error
		expected ConversionConfig
	}

	testCases := []testCase{
		{
			name:    "NumbersOnly",
			content: "numbers: [1, -2, 999999]",
			expected: ConversionConfig{
				Dialects:     []string{"standard"},
				Numbers:      []int64{1, -2, 999999},
				BatchSize:    DefaultBatchSize,
				WorkersCount: runtime.NumCPU(),
				OutputConfig: &OutputConfig{
					Type: "text",
					Dir:  "output",
				},
			},
		},
		{
			name: "FullConfig",
			content: `
dialects: [fr-FR, fr-BE]
range:
  from: -10
  to: 10
batch_size: 7
workers_count: 3
ascii: true
output:
  type: csv
  dir: result
  params:
    delimiter: ";"
    without_headers: true
`,
			expected: ConversionConfig{
				Dialects:     []string{"standard", "belgian"},
				Range:        &RangeConfig{From: -10, To: 10},
				BatchSize:    7,
				WorkersCount: 3,
				ASCII:        true,
				OutputConfig: &OutputConfig{
					Type: "csv",
					Dir:  "result",
					CSVParams: &CSVConfig{
						Delimiter:      ";",
						WithoutHeaders: true,
					},
				},
			},
		},
		{
			name: "HTTPOutputDefaults",
			content: `
numbers: [1]
output:
  type: http
  params:
    endpoint: http://localhost:8080/rows
`,
			expected: ConversionConfig{
				Dialects:     []string{"standard"},
				Numbers:      []int64{1},
				BatchSize:    DefaultBatchSize,
				WorkersCount: runtime.NumCPU(),
				OutputConfig: &OutputConfig{
					Type: "http",
					Dir:  "output",
					HTTPParams: &HTTPParams{
						Endpoint:       "http://localhost:8080/rows",
						Timeout:        time.Minute,
						BatchSize:      1000,
						WorkersCount:   1,
						Headers:        map[string]string{},
						FormatTemplate: defaultFormatTemplate,
					},
				},
			},
		},
		{
			name:    "EmptyConfig",
			content: "{}",
			wantErr: errors.New("failed to validate conversion config:\n- no numbers to convert"),
		},
		{
			name: "HTTPOutputWithoutEndpoint",
			content: `
numbers: [1]
output:
  type: http
`,
			wantErr: errors.New("failed to validate conversion config:\noutput:\nhttp params:\n- endpoint is required"),
		},
		{
			name: "AllPossibleErrors",
			content: `
dialects: [standard, fr-FR]
numbers: [1, 1000000]
range:
  from: 10
  to: 5
workers_count: -1
output:
  type: xml
`,
			wantErr: errors.New(`failed to validate conversion config:
- dialect "standard" is listed more than once
- numbers[1] should be in [-999999, 999999], got 1000000
- range from should be less or equal to range to, got 10 > 5
- workers count should be greater than 0, got -1
output:
- unknown output type: xml`),
		},
		{
			name: "RangeOutOfBounds",
			content: `
range:
  from: -1000000
  to: 1000001
`,
			wantErr: errors.New(`failed to validate conversion config:
- range from should be greater or equal to -999999, got -1000000
- range to should be less or equal to 1000000, got 1000001`),
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		path := writeConfig(t, "frenchnum-conversion-*.yml", tc.content)

		var cfg ConversionConfig

		err := cfg.ParseFromFile(path)
		if tc.wantErr != nil {
			require.EqualError(t, err, tc.wantErr.Error())

			return
		}

		require.NoError(t, err)

		// skip output params map check
		tc.expected.OutputConfig.Params = cfg.OutputConfig.Params

		require.Equal(t, tc.expected, cfg)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestConversionConfigUnknownDialect(t *testing.T) {
	var cfg ConversionConfig

	err := cfg.ParseFromYAML([]byte("dialects: [swiss]\nnumbers: [1]"))
	require.ErrorIs(t, err, fr.ErrInvalidConfiguration)
	require.ErrorContains(t, err, "dialects[0]")
}

func TestConversionConfigJSONSequence(t *testing.T) {
	var cfg ConversionConfig

	err := cfg.ParseFromJSON([]byte(`{
		"numbers": [5],
		"range": {"from": 0, "to": 3},
		"output": {"type": "parquet", "params": {"compression_codec": "ZSTD"}}
	}`))
	require.NoError(t, err)

	require.Equal(t, "ZSTD", cfg.OutputConfig.ParquetParams.CompressionCodec)
	require.Equal(t, uint64(4), cfg.Count())

	sequence := make([]int64, 0, cfg.Count())
	for i := range cfg.Count() {
		sequence = append(sequence, cfg.NumberAt(i))
	}

	require.Equal(t, []int64{5, 0, 1, 2}, sequence)
}

func TestFormatFromPath(t *testing.T) {
	type testCase struct {
		name          string
		path          string
		expected      Format
		expectedError bool
	}

	testCases := []testCase{
		{name: "YAML", path: "config.yaml", expected: FormatYAML},
		{name: "Short YAML", path: "dir/config.YML", expected: FormatYAML},
		{name: "JSON", path: "config.json", expected: FormatJSON},
		{name: "TOML", path: "config.toml", expectedError: true},
		{name: "Without extension", path: "config", expectedError: true},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		format, err := FormatFromPath(tc.path)

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expected, format)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestDecodeFileUnknownFormat(t *testing.T) {
	path := writeConfig(t, "config-*.toml", `log_format = "json"`)

	var cfg AppConfig

	err := DecodeFile(path, &cfg)
	require.ErrorContains(t, err, `unknown file format ".toml"`)
}

func TestHTTPConfigValidate(t *testing.T) {
	type testCase struct {
		name          string
		config        HTTPConfig
		expectedError []string
	}

	testCases := []testCase{
		{
			name:   "Defaults",
			config: HTTPConfig{},
		},
		{
			name:          "Address without port",
			config:        HTTPConfig{ListenAddress: "8080"},
			expectedError: []string{`listen address should be host:port, got "8080"`},
		},
		{
			name:   "Negative timeouts",
			config: HTTPConfig{ReadTimeout: -time.Second, IdleTimeout: -time.Second},
			expectedError: []string{
				"read timeout should be greater than 0, got -1s",
				"idle timeout should be greater than 0, got -1s",
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		if tc.config.ListenAddress == "" {
			tc.config.FillDefaults()
		}

		errs := tc.config.Validate()

		require.Len(t, errs, len(tc.expectedError))

		for i, err := range errs {
			require.EqualError(t, err, tc.expectedError[i])
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
