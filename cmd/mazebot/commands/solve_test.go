package commands

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSolveMissingFile: an unreadable maze file maps to exit code 1 and the
// underlying error stays inspectable through the wrap chain.
func TestSolveMissingFile(t *testing.T) {
	cmd := solveCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.maze")})

	err := cmd.Execute()
	require.Error(t, err)

	var ee *ExitError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 1, ee.Code)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
