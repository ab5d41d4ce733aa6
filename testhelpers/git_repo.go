package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
// The repository starts on an unborn "main" branch.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	// Use git -c flags to avoid reading global config and set local configs
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %s: %w", string(output), err)
	}

	// Configure Git user (required for commits)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "commit.gpgsign", "false"); err != nil {
		return nil, err
	}

	return repo, nil
}

// NewBareGitRepo initializes a bare repository, which has no working tree, in dir.
func NewBareGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "init", "--bare", "-b", "main", dir)
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init bare repo: %s: %w", string(output), err)
	}
	return &GitRepo{Dir: dir}, nil
}

// gitEnv returns the environment for git commands, isolated from the
// developer's global and system configuration.
func gitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_CONFIG_NOSYSTEM=1")
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), string(output), err)
	}
	if os.Getenv("DEBUG") != "" {
		fmt.Fprint(os.Stderr, string(output))
	}
	return nil
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// WriteFile writes content to a path relative to the repository root,
// creating parent directories as needed. Nothing is staged.
func (r *GitRepo) WriteFile(name string, content string) error {
	filePath := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateChange writes a text file named after prefix and optionally stages it.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}

	if err := r.WriteFile(fileName, textValue); err != nil {
		return err
	}

	if !unstaged {
		return r.runGitCommand("add", fileName)
	}

	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CommitIgnoreRules writes and commits a .gitignore with the given patterns.
func (r *GitRepo) CommitIgnoreRules(patterns ...string) error {
	if err := r.WriteFile(".gitignore", strings.Join(patterns, "\n")+"\n"); err != nil {
		return err
	}
	if err := r.runGitCommand("add", ".gitignore"); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", "add ignore rules")
}

// CreateAndCheckoutBranch creates a branch at HEAD and switches to it.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// DetachHead checks out HEAD's commit directly, leaving no current branch.
func (r *GitRepo) DetachHead() error {
	return r.runGitCommand("checkout", "--detach", "HEAD")
}
