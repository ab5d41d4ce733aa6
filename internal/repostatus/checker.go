package repostatus

import (
	"errors"

	repostaterrors "repostat.dev/repostat/internal/errors"
	"repostat.dev/repostat/internal/git"
	"repostat.dev/repostat/internal/utils"
)

// Repository is the subset of repository queries a check needs
type Repository interface {
	CurrentBranch() (string, error)
	StatusEntries() ([]git.StatusEntry, error)
	Close() error
}

// OpenFunc opens the repository rooted at path
type OpenFunc func(path string) (Repository, error)

// Logger receives diagnostics produced while checking
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Checker produces snapshots for paths
type Checker struct {
	open   OpenFunc
	logger Logger
}

// NewChecker creates a checker backed by go-git
func NewChecker(logger Logger) *Checker {
	return NewCheckerWithOpener(OpenGitRepository, logger)
}

// NewCheckerWithOpener creates a checker that opens repositories with open
func NewCheckerWithOpener(open OpenFunc, logger Logger) *Checker {
	return &Checker{
		open:   open,
		logger: logger,
	}
}

// OpenGitRepository adapts git.OpenRepository to OpenFunc
func OpenGitRepository(path string) (Repository, error) {
	repo, err := git.OpenRepository(path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Check opens path and classifies it. The only error returned is a
// *errors.BranchLookupError; every other failure yields a snapshot.
func (c *Checker) Check(path string) (Snapshot, error) {
	repo, err := c.open(path)
	if err != nil {
		c.logger.Debug("%s is not a repository: %v", path, err)
		return Snapshot{}, nil
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			c.logger.Debug("failed to close repository %s: %v", path, closeErr)
		}
	}()

	branch, hasBranch, err := ResolveBranch(repo)
	if err != nil {
		return Snapshot{}, err
	}

	entries, err := repo.StatusEntries()
	if err != nil {
		c.logger.Error("%v", err)
		return Snapshot{}, nil
	}

	status := Classify(entries)
	if status == Dirty {
		for _, entry := range entries {
			if !entry.Ignored && !entry.IsUnmodified() {
				c.logger.Debug("%s", entry)
			}
		}
	}

	return NewSnapshot(status, branch, hasBranch), nil
}

// ResolveBranch returns the shortened current branch of repo. An unborn or
// missing HEAD is reported as no branch without an error.
func ResolveBranch(repo Repository) (string, bool, error) {
	name, err := repo.CurrentBranch()
	if err != nil {
		if errors.Is(err, repostaterrors.ErrNoBranch) {
			return "", false, nil
		}
		if !errors.Is(err, repostaterrors.ErrBranchLookup) {
			err = repostaterrors.NewBranchLookupError("", err)
		}
		return "", false, err
	}
	if name == "" {
		return "", false, nil
	}

	return utils.ShortenBranchName(name), true, nil
}

// Classify returns Dirty when any entry is a real change and Clean otherwise.
// Ignored entries and entries without a change do not count.
func Classify(entries []git.StatusEntry) Status {
	for _, entry := range entries {
		if entry.Ignored || entry.IsUnmodified() {
			continue
		}
		return Dirty
	}
	return Clean
}
