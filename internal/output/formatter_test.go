package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"repostat.dev/repostat/internal/output"
	"repostat.dev/repostat/internal/repostatus"
	"repostat.dev/repostat/testhelpers"
)

func render(t *testing.T, path string, snap repostatus.Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	f := output.NewFormatter(&buf, false)
	require.NoError(t, f.Header(path))
	require.NoError(t, f.Snapshot(snap))
	return buf.String()
}

func TestFormatterSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("no repository", func(t *testing.T) {
		t.Parallel()
		out := render(t, "/tmp/plain", repostatus.Snapshot{})
		testhelpers.ExpectLines(t, out, `Getting info for "/tmp/plain"`, "not a repository")
	})

	t.Run("clean with branch", func(t *testing.T) {
		t.Parallel()
		out := render(t, "repo", repostatus.NewSnapshot(repostatus.Clean, "main", true))
		testhelpers.ExpectLines(t, out, `Getting info for "repo"`, "clean", "branch: main")
	})

	t.Run("dirty with shortened branch", func(t *testing.T) {
		t.Parallel()
		out := render(t, "repo", repostatus.NewSnapshot(repostatus.Dirty, "feature/..", true))
		testhelpers.ExpectLines(t, out, `Getting info for "repo"`, "dirty", "branch: feature/..")
	})

	t.Run("absent branch renders unknown", func(t *testing.T) {
		t.Parallel()
		out := render(t, "repo", repostatus.NewSnapshot(repostatus.Clean, "", false))
		testhelpers.ExpectLines(t, out, `Getting info for "repo"`, "clean", "branch: unknown")
	})

	t.Run("path is quoted", func(t *testing.T) {
		t.Parallel()
		out := render(t, `dir with "quotes"`, repostatus.Snapshot{})
		require.Contains(t, out, `Getting info for "dir with \"quotes\""`)
	})
}

func TestFormatterStyled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := output.NewFormatter(&buf, true)
	require.NoError(t, f.Snapshot(repostatus.NewSnapshot(repostatus.Dirty, "main", true)))
	require.Contains(t, buf.String(), "dirty")
	require.Contains(t, buf.String(), "branch: main")
}
