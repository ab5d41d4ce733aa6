package cli_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"repostat.dev/repostat/testhelpers"
)

func runBinary(t *testing.T, env []string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(getRepostatBinary(t), args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "unexpected error: %v", err)
		return stdout.String(), stderr.String(), exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), 0
}

func TestBinary(t *testing.T) {
	t.Parallel()

	t.Run("missing argument exits non-zero", func(t *testing.T) {
		t.Parallel()
		_, stderr, code := runBinary(t, nil)
		require.Equal(t, 1, code)
		require.Contains(t, stderr, "accepts 1 arg(s), received 0")
	})

	t.Run("not a repository exits zero", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		out, _, code := runBinary(t, nil, dir)
		require.Equal(t, 0, code)
		testhelpers.ExpectLines(t, out, `Getting info for "`+dir+`"`, "not a repository")
	})

	t.Run("ignored files keep repository clean", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CommitIgnoreRules("*.tmp"); err != nil {
				return err
			}
			return s.Repo.WriteFile("scratch.tmp", "x")
		})
		out, _, code := runBinary(t, []string{"NO_COLOR=1"}, scene.Dir)
		require.Equal(t, 0, code)
		testhelpers.ExpectLines(t, out, `Getting info for "`+scene.Dir+`"`, "clean", "branch: main")
	})

	t.Run("writes log file when configured", func(t *testing.T) {
		t.Parallel()
		logFile := filepath.Join(t.TempDir(), "repostat.log")
		_, _, code := runBinary(t, []string{"REPOSTAT_LOG_FILE=" + logFile}, t.TempDir())
		require.Equal(t, 0, code)

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "is not a repository")
	})

	t.Run("corrupted branch ref aborts with diagnostic", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			if err := testhelpers.BasicSceneSetup(s); err != nil {
				return err
			}
			return s.Repo.WriteFile(".git/refs/heads/main", "garbage\n")
		})
		out, stderr, code := runBinary(t, []string{"NO_COLOR=1"}, scene.Dir)
		require.Equal(t, 1, code)
		testhelpers.ExpectLines(t, out, `Getting info for "`+scene.Dir+`"`)
		require.Contains(t, stderr, "Error: error looking up git branch in ")
		require.Contains(t, stderr, "does not point to a valid object")
	})
}
