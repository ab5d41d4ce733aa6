// Package repostatus decides whether a path holds a git repository and, if
// it does, whether its working tree is clean or dirty and which branch is
// checked out.
//
// Failures are split three ways:
//   - An unopenable path, an unborn branch or a missing HEAD are ordinary
//     outcomes and never produce an error.
//   - Any other branch lookup failure is returned to the caller as a
//     *errors.BranchLookupError.
//   - A failed status query is logged and degrades to the NoRepository
//     snapshot.
package repostatus
