// Package git provides low-level Git operations.
//
// It wraps go-git and exposes the handful of repository queries repostat
// needs:
//   - Opening a repository rooted at a path
//   - Resolving the current branch from HEAD
//   - Enumerating working tree status entries, with ignore rules applied
//
// This package should be the only place that talks to go-git directly.
package git
