package logio_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/jcorbin/pcalc/internal/logio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Writer(t *testing.T) {
	var lines []string
	lw := &logio.Writer{
		Logf: func(mess string, args ...interface{}) {
			lines = append(lines, fmt.Sprintf(mess, args...))
		},
	}

	_, err := io.WriteString(lw, "hello\nwor")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, lines, "expected only complete lines")

	_, err = io.WriteString(lw, "ld\r\nbye")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, lines)

	require.NoError(t, lw.Close())
	assert.Equal(t, []string{"hello", "world", "bye"}, lines, "expected close to flush the partial line")
}
