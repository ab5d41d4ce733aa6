package git

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	repostaterrors "repostat.dev/repostat/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	path string
}

// OpenRepository opens the git repository rooted at the given path.
// Parent directories are not searched.
func OpenRepository(path string) (*Repository, error) {
	// Resolve to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          false,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// CurrentBranch returns the shorthand name of HEAD.
// An unborn or missing HEAD yields ErrNoBranch. A detached HEAD yields "HEAD".
// A HEAD that names an invalid ref, or resolves to an unreadable object id,
// yields a BranchLookupError.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			if err := r.checkUnbornHead(); err != nil {
				return "", repostaterrors.NewBranchLookupError(r.path, err)
			}
			return "", repostaterrors.ErrNoBranch
		}
		return "", repostaterrors.NewBranchLookupError(r.path, err)
	}

	// go-git reads an unparseable loose ref as the zero hash
	if head.Hash().IsZero() {
		return "", repostaterrors.NewBranchLookupError(r.path,
			fmt.Errorf("reference %s does not point to a valid object", head.Name()))
	}

	return head.Name().Short(), nil
}

// checkUnbornHead verifies that an unresolvable HEAD is a symbolic ref to a
// well-formed branch name, which is what an unborn branch looks like.
func (r *Repository) checkUnbornHead() error {
	ref, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return nil
	}
	if err := ref.Target().Validate(); err != nil {
		return fmt.Errorf("HEAD points to %q: %w", ref.Target().String(), err)
	}
	return nil
}

// StatusEntry is one file's relationship to the last recorded state
type StatusEntry struct {
	Path     string
	Staging  git.StatusCode
	Worktree git.StatusCode
	Ignored  bool
}

// IsUnmodified reports whether the entry carries no change at all
func (e StatusEntry) IsUnmodified() bool {
	return e.Staging == git.Unmodified && e.Worktree == git.Unmodified
}

// IsUntracked reports whether the entry is a file git does not know about
func (e StatusEntry) IsUntracked() bool {
	return e.Worktree == git.Untracked
}

// String renders the entry in porcelain form, e.g. " M README.md"
func (e StatusEntry) String() string {
	if e.Ignored {
		return "!! " + e.Path
	}
	return fmt.Sprintf("%c%c %s", e.Staging, e.Worktree, e.Path)
}

// StatusEntries returns the working tree status entries sorted by path.
// go-git drops untracked files matched by the repository's own ignore rules.
// Untracked files matched by the user's core.excludesFile are kept and
// flagged as ignored, so callers decide what to do with them.
func (r *Repository) StatusEntries() ([]StatusEntry, error) {
	worktree, err := r.Worktree()
	if err != nil {
		return nil, repostaterrors.NewStatusQueryError(r.path, fmt.Errorf("failed to get worktree: %w", err))
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, repostaterrors.NewStatusQueryError(r.path, err)
	}

	matcher, err := r.ignoreMatcher(worktree)
	if err != nil {
		return nil, repostaterrors.NewStatusQueryError(r.path, err)
	}

	entries := make([]StatusEntry, 0, len(status))
	for path, fileStatus := range status {
		entry := StatusEntry{
			Path:     path,
			Staging:  fileStatus.Staging,
			Worktree: fileStatus.Worktree,
		}
		if entry.IsUntracked() {
			entry.Ignored = matcher.Match(strings.Split(filepath.ToSlash(path), "/"), false)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

// Close releases the repository's storage handles
func (r *Repository) Close() error {
	if closer, ok := r.Storer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
