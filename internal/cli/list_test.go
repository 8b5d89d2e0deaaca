package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestListText(t *testing.T) {
	out := executeRoot(t, "list")
	assert.Contains(t, out, "membero")
	assert.Contains(t, out, "(x y)")
	assert.Regexp(t, `naturals\s+\(n\) ∞`, out)
}

func TestListJSON(t *testing.T) {
	out := executeRoot(t, "--format", "json", "list")

	var resp struct {
		Status string      `json:"status"`
		Data   []QueryInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotEmpty(t, resp.Data)

	byName := map[string]QueryInfo{}
	for _, q := range resp.Data {
		byName[q.Name] = q
	}
	assert.Equal(t, []string{"x", "y"}, byName["appendo"].Vars)
	assert.True(t, byName["round-robin"].Infinite)
	assert.False(t, byName["membero"].Infinite)
}

func TestRelations(t *testing.T) {
	out := executeRoot(t, "relations")
	assert.Contains(t, out, "(membero x l)")
	assert.Contains(t, out, "(nevero)")
	assert.NotContains(t, out, "full-addero")

	out = executeRoot(t, "relations", "--all")
	assert.Contains(t, out, "(full-addero b x y r c)")
	assert.Regexp(t, `\(gen-addero d n m r\)\s+local`, out)
	assert.Regexp(t, `\(appendo l s out\)\s+exported`, out)
}

func TestRelationsJSON(t *testing.T) {
	out := executeRoot(t, "--format", "json", "relations")

	var resp struct {
		Data []RelationInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotEmpty(t, resp.Data)
	for _, r := range resp.Data {
		assert.Equal(t, "exported", r.Visibility, r.Name)
		assert.NotNil(t, r.Params, r.Name)
	}
	assert.Contains(t, out, `"name":"alwayso","params":[]`)
}
