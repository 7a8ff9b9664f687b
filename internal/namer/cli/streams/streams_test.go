package streams

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIn(t *testing.T) {
	in := NewIn(strings.NewReader("71\n"))

	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "71\n", string(data))

	require.False(t, in.IsTerminal())
	require.Zero(t, in.FD())
	require.NoError(t, in.Close())
}

func TestOut(t *testing.T) {
	buf := new(bytes.Buffer)
	out := NewOut(buf)

	_, err := out.Write([]byte("71: soixante-et-onze\n"))
	require.NoError(t, err)
	require.Equal(t, "71: soixante-et-onze\n", buf.String())

	require.False(t, out.IsTerminal())
	require.NoError(t, out.Close())
}

func TestOutFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out-*.txt")
	require.NoError(t, err)

	out := NewOut(f)

	require.Equal(t, f.Fd(), out.FD())
	require.False(t, out.IsTerminal())
	require.NoError(t, out.Close())

	_, err = out.Write([]byte("closed"))
	require.Error(t, err)
}
