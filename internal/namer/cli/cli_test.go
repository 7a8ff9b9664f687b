package cli

import (
	"bytes"
	"strings"
	"testing"

	clierrors "github.com/frenchnum/frenchnum/internal/namer/cli/errors"
	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/stretchr/testify/require"
)

func newTestCli(t *testing.T) *Cli {
	t.Helper()

	cliOpts := options.NewCliOptions(nil, "1.0.0")
	cliOpts.SetIn(streams.NewIn(strings.NewReader("")))
	cliOpts.SetOut(streams.NewOut(new(bytes.Buffer)))

	return NewCli(cliOpts)
}

func TestInitialize(t *testing.T) {
	type testCase struct {
		name            string
		args            []string
		env             map[string]string
		expectedTTY     bool
		expectedDebug   bool
		expectedDialect string
		expectedError   bool
	}

	testCases := []testCase{
		{
			name:            "Defaults",
			args:            []string{},
			expectedDialect: "standard",
		},
		{
			name:            "Flags",
			args:            []string{"--tty", "--debug"},
			expectedTTY:     true,
			expectedDebug:   true,
			expectedDialect: "standard",
		},
		{
			name:            "Dialect from environment",
			args:            []string{"-T"},
			env:             map[string]string{"FRENCHNUM_DEFAULT_DIALECT": "fr-BE"},
			expectedDialect: "fr-BE",
		},
		{
			name:          "Unknown log format",
			args:          []string{},
			env:           map[string]string{"FRENCHNUM_LOG_FORMAT": "xml"},
			expectedError: true,
		},
		{
			name:          "Missing config file",
			args:          []string{"--config", "missing.yml"},
			expectedError: true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		for key, value := range tc.env {
			t.Setenv(key, value)
		}

		cli := newTestCli(t)

		require.NoError(t, cli.handleAppFlags(tc.args))

		err := cli.initialize()
		require.Equal(t, tc.expectedError, err != nil)

		if tc.expectedError {
			return
		}

		opts := cli.Options()

		require.Equal(t, tc.expectedTTY, opts.UseTTY())
		require.Equal(t, tc.expectedDebug, opts.DebugMode())
		require.Equal(t, tc.expectedDialect, opts.AppConfig().DefaultDialect)
		require.NotNil(t, opts.Renderer())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestHandleAppFlagsUsageError(t *testing.T) {
	cli := newTestCli(t)

	var usageErr *clierrors.UsageError

	err := cli.handleAppFlags([]string{"--unknown"})
	require.ErrorAs(t, err, &usageErr)
}
