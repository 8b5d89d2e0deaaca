package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatterSuccess(t *testing.T) {
	data := map[string]string{"query": "membero"}
	lines := func(w io.Writer) { fmt.Fprintln(w, "membero") }

	buf := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: buf}).Success(data, lines))
	assert.Equal(t, "membero\n", buf.String())

	buf.Reset()
	require.NoError(t, (&OutputFormatter{Format: "json", Writer: buf}).Success(data, lines))
	assert.Equal(t, `{"status":"ok","data":{"query":"membero"}}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, (&OutputFormatter{Format: "yaml", Writer: buf}).Success(data, lines))
	assert.Equal(t, "status: ok\ndata:\n  query: membero\n", buf.String())
}

func TestOutputFormatterError(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, (&OutputFormatter{Format: "text", Writer: buf}).Error("E001", "unknown query"))
	assert.Equal(t, "Error [E001]: unknown query\n", buf.String())

	buf.Reset()
	require.NoError(t, (&OutputFormatter{Format: "json", Writer: buf}).Error("E001", "unknown query"))
	assert.Equal(t, `{"status":"error","error":{"code":"E001","message":"unknown query"}}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, (&OutputFormatter{Format: "yaml", Writer: buf}).Error("E001", "unknown query"))
	assert.Equal(t, "status: error\nerror:\n  code: E001\n  message: unknown query\n", buf.String())
}

func TestExitError(t *testing.T) {
	base := errors.New("base")
	err := WrapExitError(ExitCommandError, "wrapped", base)
	assert.Equal(t, "wrapped: base", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("outer: %w", err)))

	assert.Equal(t, "plain", NewExitError(ExitFailure, "plain").Error())
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("other")))
}
