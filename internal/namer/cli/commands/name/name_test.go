package name

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render/mock"
	"github.com/frenchnum/frenchnum/internal/namer/cli/render/prompt"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/frenchnum/frenchnum/internal/namer/locale/fr"
	"github.com/frenchnum/frenchnum/internal/namer/usecase/general"
	"github.com/pkg/errors"
	testifyMock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) *general.UseCase {
	t.Helper()

	uc := general.NewUseCase(general.UseCaseConfig{})
	require.NoError(t, uc.Setup())

	return uc
}

func TestNewNameCommand(t *testing.T) {
	type testCase struct {
		name          string
		args          []string
		input         string
		expected      string
		expectedError error
	}

	testCases := []testCase{
		{
			name:     "Numbers from args",
			args:     []string{"71", "80", "--", "-21"},
			expected: "71: soixante-et-onze\n80: quatre-vingts\n-21: moins-vingt-et-un\n",
		},
		{
			name:     "Belgian dialect by tag",
			args:     []string{"--dialect", "fr-BE", "71", "99"},
			expected: "71: septante-et-un\n99: nonante-neuf\n",
		},
		{
			name:     "ASCII folding",
			args:     []string{"--ascii", "0", "1000"},
			expected: "0: zero\n1000: mille\n",
		},
		{
			name:     "Numbers from input",
			input:    "1\n\n  2021 \n",
			expected: "1: un\n2021: deux-mille-vingt-et-un\n",
		},
		{
			name:          "Out of range",
			args:          []string{"1000000"},
			expectedError: fr.ErrOutOfRange,
		},
		{
			name:          "Unknown dialect",
			args:          []string{"--dialect", "swiss-german", "1"},
			expectedError: fr.ErrInvalidConfiguration,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		out := new(bytes.Buffer)
		in := streams.NewIn(strings.NewReader(tc.input))

		cliOpts := options.NewCliOptions(newUseCase(t), "")
		cliOpts.SetOut(streams.NewOut(out))
		cliOpts.SetRenderer(prompt.NewRenderer(in, cliOpts.Out(), false))

		cmd := NewNameCommand(cliOpts)
		cmd.SetArgs(tc.args)

		err := cmd.Execute()

		if tc.expectedError != nil {
			require.ErrorIs(t, err, tc.expectedError)

			return
		}

		require.NoError(t, err)
		require.Equal(t, tc.expected, out.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestGetNumbers(t *testing.T) {
	type testCase struct {
		name          string
		args          []string
		useTTY        bool
		mockFunc      func(r *mock.Renderer)
		expected      []int64
		expectedError bool
	}

	testCases := []testCase{
		{
			name:     "Args",
			args:     []string{"5", "-5"},
			mockFunc: func(_ *mock.Renderer) {},
			expected: []int64{5, -5},
		},
		{
			name:          "Invalid arg",
			args:          []string{"five"},
			mockFunc:      func(_ *mock.Renderer) {},
			expectedError: true,
		},
		{
			name:   "Interactive input",
			useTTY: true,
			mockFunc: func(r *mock.Renderer) {
				r.On("InputMenu", testifyMock.Anything, "Enter a number", testifyMock.Anything).Return("81", nil)
			},
			expected: []int64{81},
		},
		{
			name: "Empty input stream",
			mockFunc: func(r *mock.Renderer) {
				r.On("ReadLine").Return("", errors.WithStack(io.EOF)).Once()
			},
			expectedError: true,
		},
		{
			name: "Broken input stream",
			mockFunc: func(r *mock.Renderer) {
				r.On("ReadLine").Return("", errors.New("bad file descriptor")).Once()
			},
			expectedError: true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		r := mock.NewRenderer(t)
		tc.mockFunc(r)

		opts := &nameOptions{renderer: r, useTTY: tc.useTTY}

		numbers, err := getNumbers(context.Background(), opts, tc.args)

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expected, numbers)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestValidateNumber(t *testing.T) {
	require.NoError(t, validateNumber("999999"))
	require.NoError(t, validateNumber(" -999999 "))
	require.Error(t, validateNumber("1000000"))
	require.Error(t, validateNumber("-1000000"))
	require.Error(t, validateNumber("1e3"))
	require.ErrorContains(t, validateNumber("  "), "string should not be empty")
}
