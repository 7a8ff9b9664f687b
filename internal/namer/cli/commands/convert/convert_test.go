package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	rendererMock "github.com/frenchnum/frenchnum/internal/namer/cli/render/mock"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/frenchnum/frenchnum/internal/namer/usecase"
	"github.com/frenchnum/frenchnum/internal/namer/usecase/general"
	useCaseMock "github.com/frenchnum/frenchnum/internal/namer/usecase/mock"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const textConfig = `
dialects: [fr-BE]
numbers: [71, 81, 91]
batch_size: 2
workers_count: 2
output:
  type: text
  dir: out
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "frenchnum-config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newUseCase(t *testing.T) *general.UseCase {
	t.Helper()

	uc := general.NewUseCase(general.UseCaseConfig{})
	require.NoError(t, uc.Setup())

	t.Cleanup(func() { require.NoError(t, uc.Teardown()) })

	return uc
}

func TestGetConversionConfigPath(t *testing.T) {
	type testCase struct {
		name          string
		args          []string
		expectedPath  string
		expectedError bool
		mockFunc      func(r *rendererMock.Renderer)
	}

	testCases := []testCase{
		{
			name:          "Config path from args",
			args:          []string{"config.json"},
			expectedPath:  "config.json",
			expectedError: false,
			mockFunc:      func(_ *rendererMock.Renderer) {},
		},
		{
			name:          "Config path from input",
			args:          []string{},
			expectedPath:  "config.yml",
			expectedError: false,
			mockFunc: func(r *rendererMock.Renderer) {
				r.
					On("InputMenu", mock.Anything, mock.Anything, mock.Anything).
					Return("config.yml", nil)
			},
		},
		{
			name:          "Error input menu",
			args:          []string{},
			expectedPath:  "",
			expectedError: true,
			mockFunc: func(r *rendererMock.Renderer) {
				r.
					On("InputMenu", mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("EOF"))
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		r := rendererMock.NewRenderer(t)
		tc.mockFunc(r)

		opts := &convertOptions{
			renderer: r,
		}

		err := getConversionConfigFilePath(context.Background(), opts, tc.args)

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expectedPath, opts.conversionConfigPath)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRunConvert(t *testing.T) {
	type testCase struct {
		name          string
		oldFile       bool
		force         bool
		expectedError bool
	}

	testCases := []testCase{
		{
			name: "Empty output dir",
		},
		{
			name:          "Old file without force",
			oldFile:       true,
			expectedError: true,
		},
		{
			name:    "Old file with force",
			oldFile: true,
			force:   true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		fs := afero.NewMemMapFs()

		if tc.oldFile {
			require.NoError(t, afero.WriteFile(fs, "out/belgian.txt", []byte("old\n"), 0o644))
		}

		opts := &convertOptions{
			useCase:              newUseCase(t),
			fs:                   fs,
			conversionConfigPath: writeConfig(t, textConfig),
			forceConversion:      tc.force,
		}

		err := runConvert(context.Background(), opts)
		require.Equal(t, tc.expectedError, err != nil)

		data, readErr := afero.ReadFile(fs, "out/belgian.txt")
		require.NoError(t, readErr)

		if tc.expectedError {
			require.Equal(t, "old\n", string(data))

			return
		}

		require.Equal(t, "71: septante-et-un\n81: huitante-et-un\n91: nonante-et-un\n", string(data))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRunConvertInvalidConfig(t *testing.T) {
	opts := &convertOptions{
		useCase:              useCaseMock.NewUseCase(t),
		fs:                   afero.NewMemMapFs(),
		conversionConfigPath: writeConfig(t, "numbers: [1000000]"),
	}

	require.Error(t, runConvert(context.Background(), opts))
}

func TestRunConvertHTTPWithSpinner(t *testing.T) {
	uc := useCaseMock.NewUseCase(t)
	uc.On("CreateTask", mock.Anything, mock.AnythingOfType("usecase.TaskConfig")).Return("task-1", nil)
	uc.On("WaitResult", "task-1").Return(errors.New("connection refused"))

	r := rendererMock.NewRenderer(t)
	r.On("WithSpinner", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(func())()
	})

	opts := &convertOptions{
		useCase:              uc,
		renderer:             r,
		fs:                   afero.NewMemMapFs(),
		useTTY:               true,
		conversionConfigPath: writeConfig(t, "numbers: [1]\noutput:\n  type: http\n  params:\n    endpoint: http://localhost:1\n"),
	}

	require.ErrorContains(t, runConvert(context.Background(), opts), "connection refused")
	uc.AssertNotCalled(t, "GetProgress", mock.Anything)
}

func TestRunConvertTaskError(t *testing.T) {
	uc := useCaseMock.NewUseCase(t)
	uc.On("CreateTask", mock.Anything, mock.Anything).Return("task-1", nil)
	uc.On("GetProgress", "task-1").Return(map[string]usecase.Progress{"standard": {Done: 0, Total: 1}}, nil)
	uc.On("WaitResult", "task-1").Return(errors.New("disk is full"))

	opts := &convertOptions{
		useCase:              uc,
		fs:                   afero.NewMemMapFs(),
		conversionConfigPath: writeConfig(t, "numbers: [1]\noutput:\n  type: devnull\n"),
	}

	require.ErrorContains(t, runConvert(context.Background(), opts), "disk is full")
}

func TestNewConvertCommand(t *testing.T) {
	outputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "standard.csv"), []byte("old\n"), 0o600))

	config := "numbers: [80, 200]\noutput:\n  type: csv\n  dir: " + outputDir + "\n"

	cliOpts := options.NewCliOptions(newUseCase(t), "1.0.0")
	cliOpts.SetOut(streams.NewOut(new(bytes.Buffer)))

	cmd := NewConvertCommand(cliOpts)
	cmd.SetArgs([]string{"--force", writeConfig(t, config)})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(outputDir, "standard.csv"))
	require.NoError(t, err)
	require.Equal(t, "number,words\n80,quatre-vingts\n200,deux-cents\n", string(data))
}
