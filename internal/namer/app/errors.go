package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// SignalError is the cancellation cause when the process receives an OS signal.
type SignalError struct {
	signal os.Signal
}

// NewSignalError function creates SignalError object.
func NewSignalError(signal os.Signal) *SignalError {
	return &SignalError{
		signal: signal,
	}
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("%v signal", e.signal)
}

// Signal returns the received signal.
func (e *SignalError) Signal() os.Signal {
	return e.signal
}

// stackFrames renders the innermost recorded stack of err, two lines per frame.
func stackFrames(err error) []string {
	var tracer stackTracer

	if !errors.As(err, &tracer) {
		return nil
	}

	frames := make([]string, 0, 2*len(tracer.StackTrace())) //nolint:mnd

	for _, frame := range tracer.StackTrace() {
		frames = append(frames, strings.Split(fmt.Sprintf("%+v", frame), "\n")...)
	}

	return frames
}
