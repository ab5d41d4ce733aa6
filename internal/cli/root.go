// Package cli wires the repostat command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repostat.dev/repostat/internal/output"
	"repostat.dev/repostat/internal/repostatus"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repostat <path>",
		Short: "Report whether a path is a git repository and if its working tree is clean",
		Long: `Report whether a path is a git repository.

For a repository, prints "clean" or "dirty" (ignored files do not count)
followed by the current branch, shortened to ten characters.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0])
		},
	}

	return rootCmd
}

func runCheck(cmd *cobra.Command, path string) error {
	splog, err := output.NewSplogWithConfig(output.SplogConfig{
		Writer:      cmd.ErrOrStderr(),
		LogFilePath: output.GetLogFilePath(),
		Debug:       output.DebugEnabled(),
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		_ = splog.Close()
	}()

	stdout := cmd.OutOrStdout()
	styled := false
	if f, ok := stdout.(*os.File); ok {
		styled = output.ShouldColor(f)
	}
	formatter := output.NewFormatter(stdout, styled)

	if err := formatter.Header(path); err != nil {
		return err
	}

	snap, err := repostatus.NewChecker(splog).Check(path)
	if err != nil {
		splog.Debug("check of %s aborted: %v", path, err)
		return err
	}

	return formatter.Snapshot(snap)
}
