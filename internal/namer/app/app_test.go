package app

import (
	"context"
	"syscall"
	"testing"

	"github.com/frenchnum/frenchnum/internal/namer/cli/options"
	usecaseMock "github.com/frenchnum/frenchnum/internal/namer/usecase/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSignalError(t *testing.T) {
	err := NewSignalError(syscall.SIGTERM)

	require.Equal(t, "terminated signal", err.Error())
	require.Equal(t, syscall.SIGTERM, err.Signal())

	var signalErr *SignalError
	require.ErrorAs(t, errors.WithMessage(err, "canceled"), &signalErr)
}

func TestStackFrames(t *testing.T) {
	type testCase struct {
		name     string
		err      error
		expected bool
	}

	testCases := []testCase{
		{
			name:     "Error with stack",
			err:      errors.New("failed"),
			expected: true,
		},
		{
			name:     "Wrapped error with stack",
			err:      errors.WithMessage(errors.New("failed"), "during conversion"),
			expected: true,
		},
		{
			name:     "Error without stack",
			err:      NewSignalError(syscall.SIGINT),
			expected: false,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		frames := stackFrames(tc.err)

		require.Equal(t, tc.expected, len(frames) > 0)

		if tc.expected {
			require.Contains(t, frames[0], "TestStackFrames")
			require.Equal(t, 0, len(frames)%2)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRunCancelsOnSetupError(t *testing.T) {
	uc := usecaseMock.NewUseCase(t)
	uc.On("Setup").Return(errors.New("setup failed"))

	a := &App{
		cliOpts: options.NewCliOptions(uc, "test"),
		useCase: uc,
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	a.run(ctx, cancel)

	require.EqualError(t, context.Cause(ctx), "setup failed")
}
