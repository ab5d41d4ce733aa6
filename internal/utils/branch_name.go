package utils

const (
	// MaxBranchLabelLength is the longest branch label shown unmodified
	MaxBranchLabelLength = 10

	// branchLabelKeep is how many leading bytes of a long branch name are kept
	branchLabelKeep = 8

	// branchLabelEllipsis marks a shortened branch label
	branchLabelEllipsis = ".."
)

// ShortenBranchName abbreviates a branch name for display. Names longer than
// MaxBranchLabelLength bytes keep their first 8 bytes followed by "..", so the
// result is always exactly MaxBranchLabelLength bytes. Shorter names are
// returned unchanged.
func ShortenBranchName(name string) string {
	if len(name) <= MaxBranchLabelLength {
		return name
	}
	return name[:branchLabelKeep] + branchLabelEllipsis
}
