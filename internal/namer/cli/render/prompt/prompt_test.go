package prompt

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/frenchnum/frenchnum/internal/namer/cli/render/assets"
	"github.com/frenchnum/frenchnum/internal/namer/cli/streams"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	expected := assets.LogoText
	out := new(bytes.Buffer)

	renderer := NewRenderer(nil, streams.NewOut(out), false)

	renderer.Logo()

	require.Equal(t, expected, out.String())
}

func TestSelectionMenu(t *testing.T) {
	type testCase struct {
		name            string
		input           string
		expectedError   bool
		items           []string
		expectedItem    string
		expectedMessage string
	}

	testCases := []testCase{
		{
			name:          "Successful",
			input:         "2",
			expectedError: false,
			items:         []string{"standard", "belgian"},
			expectedItem:  "belgian",
			expectedMessage: `
Choose dialect
1. standard
2. belgian
Write a number: 2
Selected: belgian
`,
		},
		{
			name:          "Successful retry",
			input:         "3\n1",
			expectedError: false,
			items:         []string{"standard", "belgian"},
			expectedItem:  "standard",
			expectedMessage: `
Choose dialect
1. standard
2. belgian
Write a number: 3
invalid input, please try again
Write a number: 1
Selected: standard
`,
		},
		{
			name:          "Invalid input",
			input:         "",
			expectedError: true,
			items:         []string{"standard", "belgian"},
			expectedItem:  "",
			expectedMessage: `
Choose dialect
1. standard
2. belgian
Write a number:
`,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		in := strings.NewReader(tc.input)
		out := new(bytes.Buffer)

		renderer := NewRenderer(streams.NewIn(in), streams.NewOut(out), false)

		item, err := renderer.SelectionMenu(context.Background(), "Choose dialect", tc.items)

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expectedItem, item)
		require.Equal(t, strings.TrimSpace(tc.expectedMessage), strings.TrimSpace(out.String()))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestInputMenu(t *testing.T) {
	type testCase struct {
		name            string
		input           string
		expectedError   bool
		expectedInput   string
		expectedMessage string
	}

	testCases := []testCase{
		{
			name:            "Successful",
			input:           "71",
			expectedError:   false,
			expectedInput:   "71",
			expectedMessage: `Number: 71`,
		},
		{
			name:          "Successful retry",
			input:         "\n71",
			expectedError: false,
			expectedInput: "71",
			expectedMessage: `
Number: 
string should not be empty
Number: 71
`,
		},
		{
			name:            "Invalid input",
			input:           "",
			expectedError:   true,
			expectedInput:   "",
			expectedMessage: `Number:`,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		in := strings.NewReader(tc.input)
		out := new(bytes.Buffer)

		renderer := NewRenderer(streams.NewIn(in), streams.NewOut(out), false)

		input, err := renderer.InputMenu(context.Background(), "Number", func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("string should not be empty")
			}

			return nil
		})

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expectedInput, input)
		require.Equal(t, strings.TrimSpace(tc.expectedMessage), strings.TrimSpace(out.String()))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestInputMenuCanceled(t *testing.T) {
	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	defer writer.Close()
	defer reader.Close()

	renderer := NewRenderer(streams.NewIn(reader), streams.NewOut(new(bytes.Buffer)), false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = renderer.InputMenu(ctx, "Number", func(string) error { return nil })
	require.Error(t, err)
}

func TestWithSpinner(t *testing.T) {
	expected := "Sending rows"
	out := new(bytes.Buffer)

	renderer := NewRenderer(nil, streams.NewOut(out), false)

	called := false

	renderer.WithSpinner(expected, func() { called = true })

	require.True(t, called)
	require.Equal(t, strings.TrimSpace(expected), strings.TrimSpace(out.String()))
}

func TestReadLine(t *testing.T) {
	type testCase struct {
		name            string
		content         string
		closeReader     bool
		expectedError   bool
		expectedContent string
	}

	testCases := []testCase{
		{
			name:            "Successful",
			content:         "  80  \n90",
			expectedError:   false,
			closeReader:     false,
			expectedContent: "80",
		},
		{
			name:            "Failed to read",
			content:         "80",
			expectedError:   true,
			closeReader:     true,
			expectedContent: "",
		},
		{
			name:            "EOF",
			content:         "",
			expectedError:   true,
			closeReader:     false,
			expectedContent: "",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		tempFile, err := os.CreateTemp(t.TempDir(), "temp-*.txt")
		require.NoError(t, err)

		_, err = tempFile.WriteString(tc.content)
		require.NoError(t, err)

		_, err = tempFile.Seek(0, 0)
		require.NoError(t, err)

		if tc.closeReader {
			require.NoError(t, tempFile.Close())
		} else {
			defer tempFile.Close()
		}

		renderer := NewRenderer(streams.NewIn(tempFile), nil, false)

		actual, err := renderer.ReadLine()

		require.Equal(t, tc.expectedError, err != nil)
		require.Equal(t, tc.expectedContent, actual)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestReadLineWithoutInput(t *testing.T) {
	renderer := NewRenderer(nil, nil, false)

	_, err := renderer.ReadLine()
	require.ErrorIs(t, err, io.EOF)
	require.False(t, renderer.IsTerminal())
}
