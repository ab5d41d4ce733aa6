package repostatus

// Status classifies a checked path
type Status int

const (
	// NoRepository means the path could not be opened as a repository
	NoRepository Status = iota
	// Clean means the working tree has no changes outside ignore rules
	Clean
	// Dirty means at least one non-ignored change exists
	Dirty
)

// String returns the label printed for the status
func (s Status) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	default:
		return "not a repository"
	}
}

// UnknownBranch is shown when a repository has no resolvable branch
const UnknownBranch = "unknown"

// Snapshot is the result of a single check. The zero value is the
// NoRepository snapshot.
type Snapshot struct {
	Status    Status
	Branch    string
	HasBranch bool
}

// NewSnapshot builds a snapshot for an opened repository. The branch is
// dropped when status is NoRepository.
func NewSnapshot(status Status, branch string, hasBranch bool) Snapshot {
	if status == NoRepository {
		return Snapshot{}
	}
	if !hasBranch {
		branch = ""
	}
	return Snapshot{
		Status:    status,
		Branch:    branch,
		HasBranch: hasBranch,
	}
}

// IsRepository reports whether the snapshot describes an opened repository
func (s Snapshot) IsRepository() bool {
	return s.Status != NoRepository
}

// BranchLabel returns the branch for display, or UnknownBranch when absent
func (s Snapshot) BranchLabel() string {
	if !s.HasBranch {
		return UnknownBranch
	}
	return s.Branch
}
