package git

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// excludesFile returns the path configured by core.excludesFile, looking at
// the repository, global and system configuration in that order. When none
// sets it, git's default $XDG_CONFIG_HOME/git/ignore is used.
func (r *Repository) excludesFile() (string, error) {
	local, err := r.Config()
	if err != nil {
		return "", fmt.Errorf("failed to read repository config: %w", err)
	}
	if path := coreExcludesFile(local); path != "" {
		return expandHome(path)
	}

	for _, scope := range []config.Scope{config.GlobalScope, config.SystemScope} {
		cfg, err := config.LoadConfig(scope)
		if err != nil {
			return "", fmt.Errorf("failed to read git config: %w", err)
		}
		if path := coreExcludesFile(cfg); path != "" {
			return expandHome(path)
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	return filepath.Join(home, ".config", "git", "ignore"), nil
}

func coreExcludesFile(cfg *config.Config) string {
	if cfg == nil || cfg.Raw == nil || !cfg.Raw.HasSection("core") {
		return ""
	}
	return cfg.Raw.Section("core").Option("excludesfile")
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// readPatternFile parses an ignore file. A missing file has no patterns.
func readPatternFile(path string) ([]gitignore.Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return patterns, nil
}

// ignoreMatcher matches paths against the user's excludes file followed by
// the repository's own ignore rules, so repository rules take precedence.
func (r *Repository) ignoreMatcher(worktree *git.Worktree) (gitignore.Matcher, error) {
	path, err := r.excludesFile()
	if err != nil {
		return nil, err
	}

	var patterns []gitignore.Pattern
	if path != "" {
		patterns, err = readPatternFile(path)
		if err != nil {
			return nil, err
		}
	}

	repoPatterns, err := gitignore.ReadPatterns(worktree.Filesystem, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore rules: %w", err)
	}
	patterns = append(patterns, repoPatterns...)
	patterns = append(patterns, worktree.Excludes...)

	return gitignore.NewMatcher(patterns), nil
}
