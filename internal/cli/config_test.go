package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kanren.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	cfg, err = LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	cfg, err = LoadConfig(writeConfig(t, `
format: json
count: "5"
limit: 10
verbose: true
metrics: true
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{Format: "json", Count: "5", Limit: 10, Verbose: true, Metrics: true}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")

	_, err = LoadConfig(writeConfig(t, "formt: json\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config YAML")
	assert.Contains(t, err.Error(), "formt")

	_, err = LoadConfig(writeConfig(t, "format: xml\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)

	_, err = LoadConfig(writeConfig(t, "limit: -2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid limit -2")
}

func TestConfigDefaults(t *testing.T) {
	path := writeConfig(t, "count: \"2\"\n")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "run", "membero"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1\n2\n", buf.String())

	// flags win over the file
	buf.Reset()
	cmd = NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "run", "membero", "--count", "1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1\n", buf.String())
}

func TestConfigFormat(t *testing.T) {
	path := writeConfig(t, "format: json\n")

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--config", path, "list"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"status":"ok"`)

	buf.Reset()
	cmd = NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--config", path, "--format", "text", "list"})
	require.NoError(t, cmd.Execute())
	assert.NotContains(t, buf.String(), `"status"`)
}

func TestBadConfigExitCode(t *testing.T) {
	path := writeConfig(t, "colour: blue\n")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "list"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
