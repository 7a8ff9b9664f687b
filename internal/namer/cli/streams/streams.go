// Package streams wraps the standard input and output of the CLI and remembers
// whether they are attached to a terminal.
package streams

import (
	"io"

	"github.com/moby/term"
)

type stream struct {
	fd         uintptr
	isTerminal bool
}

func newStream(v any) stream {
	fd, isTerminal := term.GetFdInfo(v)

	return stream{fd: fd, isTerminal: isTerminal}
}

// FD returns the file descriptor of the stream, zero when it has none.
func (s stream) FD() uintptr {
	return s.fd
}

// IsTerminal returns true if this stream is connected to a terminal.
func (s stream) IsTerminal() bool {
	return s.isTerminal
}

// In is the stream numbers and menu answers are read from.
type In struct {
	stream
	in io.ReadCloser
}

// NewIn returns a new [In] from an [io.Reader].
func NewIn(in io.Reader) *In {
	readCloser, ok := in.(io.ReadCloser)
	if !ok {
		readCloser = io.NopCloser(in)
	}

	return &In{stream: newStream(in), in: readCloser}
}

func (i *In) Read(p []byte) (int, error) {
	return i.in.Read(p) //nolint:wrapcheck
}

func (i *In) Close() error {
	return i.in.Close() //nolint:wrapcheck
}

// Out is the stream named numbers and logs are written to.
type Out struct {
	stream
	out io.Writer
}

// NewOut returns a new [Out] from an [io.Writer].
func NewOut(out io.Writer) *Out {
	return &Out{stream: newStream(out), out: out}
}

func (o *Out) Write(p []byte) (int, error) {
	return o.out.Write(p) //nolint:wrapcheck
}

// Close closes the underlying writer if it is closable.
func (o *Out) Close() error {
	if closer, ok := o.out.(io.Closer); ok {
		return closer.Close() //nolint:wrapcheck
	}

	return nil
}
