// Package utils provides shared utility functions.
//
// Currently this is branch label formatting used when displaying
// repository status.
package utils
