// Package errors provides sentinel errors and custom error types for the repostat application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNoBranch indicates that HEAD is unborn or missing. It is an expected
	// state for a freshly initialized repository, not a failure.
	ErrNoBranch = errors.New("no current branch")

	// ErrBranchLookup indicates that reading HEAD failed for any other reason
	ErrBranchLookup = errors.New("branch lookup failed")

	// ErrStatusQuery indicates that the working tree status could not be read
	ErrStatusQuery = errors.New("status query failed")
)

// BranchLookupError wraps an unexpected failure while resolving HEAD
type BranchLookupError struct {
	Path string
	Err  error
}

func (e *BranchLookupError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error looking up git branch in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("error looking up git branch: %v", e.Err)
}

// Is returns true if the target error is ErrBranchLookup
func (e *BranchLookupError) Is(target error) bool {
	return target == ErrBranchLookup
}

func (e *BranchLookupError) Unwrap() error {
	return e.Err
}

// NewBranchLookupError creates a new BranchLookupError
func NewBranchLookupError(path string, err error) *BranchLookupError {
	return &BranchLookupError{Path: path, Err: err}
}

// StatusQueryError wraps a failure while enumerating working tree status entries
type StatusQueryError struct {
	Path string
	Err  error
}

func (e *StatusQueryError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error looking up git statuses in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("error looking up git statuses: %v", e.Err)
}

// Is returns true if the target error is ErrStatusQuery
func (e *StatusQueryError) Is(target error) bool {
	return target == ErrStatusQuery
}

func (e *StatusQueryError) Unwrap() error {
	return e.Err
}

// NewStatusQueryError creates a new StatusQueryError
func NewStatusQueryError(path string, err error) *StatusQueryError {
	return &StatusQueryError{Path: path, Err: err}
}
