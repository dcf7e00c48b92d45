package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// dataDir returns a fresh JSON-directory data path flag pair.
func dataDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data")
}

// decodeResponse parses a JSON-mode CLI response payload into v.
func decodeResponse(t *testing.T, out string, v any) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	if v != nil {
		require.NoError(t, json.Unmarshal(resp.Data, v))
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := runCLI(t, "--format", "xml", "--data", dataDir(t), "item", "list")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestRootCommand_Help(t *testing.T) {
	out, err := runCLI(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "price list")
}

func TestGetExitCode(t *testing.T) {
	require.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	require.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}
