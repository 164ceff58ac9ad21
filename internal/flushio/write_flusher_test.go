package flushio_test

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jcorbin/pcalc/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewWriteFlusher(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		var buf bytes.Buffer
		wf := flushio.NewWriteFlusher(&buf)
		_, err := io.WriteString(wf, "42\n")
		require.NoError(t, err)
		assert.Equal(t, "42\n", buf.String(), "expected buffers to be written through")
		assert.NoError(t, wf.Flush())
	})

	t.Run("builder", func(t *testing.T) {
		var sb strings.Builder
		wf := flushio.NewWriteFlusher(&sb)
		_, err := io.WriteString(wf, "0x2A\n")
		require.NoError(t, err)
		assert.Equal(t, "0x2A\n", sb.String())
	})

	t.Run("already flushable", func(t *testing.T) {
		bw := bufio.NewWriter(io.Discard)
		assert.Equal(t, flushio.WriteFlusher(bw), flushio.NewWriteFlusher(bw))
	})

	t.Run("discard", func(t *testing.T) {
		wf := flushio.NewWriteFlusher(nil)
		_, err := io.WriteString(wf, "ignored")
		assert.NoError(t, err)
		assert.NoError(t, wf.Flush())
	})

	t.Run("file", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer f.Close()

		wf := flushio.NewWriteFlusher(f)
		_, err = io.WriteString(wf, "7\n")
		require.NoError(t, err)

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Equal(t, "", string(data), "expected output to be buffered")

		require.NoError(t, wf.Flush())
		data, err = os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Equal(t, "7\n", string(data))
	})
}
