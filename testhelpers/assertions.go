// Package testhelpers provides testing utilities for repostat,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectLines asserts that output consists of exactly the expected lines.
func ExpectLines(t *testing.T, output string, expected ...string) {
	t.Helper()

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Equal(t, expected, lines, "output lines do not match")
}
