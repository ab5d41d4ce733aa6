package cli_test

import (
	"testing"

	"repostat.dev/repostat/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

// getRepostatBinary returns the path to the pre-built repostat binary.
func getRepostatBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelpers.GetSharedBinaryPath()
	if binaryPath == "" {
		t.Fatal("repostat binary not built")
	}
	return binaryPath
}
