package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/shell"
	"github.com/grovekit/grove/internal/ui"
)

func newGoCmd() *cobra.Command {
	var (
		pathOnly bool
		copyPath bool
	)

	cmd := &cobra.Command{
		Use:     "go [name]",
		Short:   "Jump into a worktree",
		GroupID: GroupWorktree,
		Aliases: []string{"g"},
		Long: `Open a subshell in a worktree.

Without a name, shows an interactive picker. Names match the branch,
the directory name, or a path suffix like "feature/x".

A subshell can't change your current shell's directory; install the
shell integration (grove shell-init) to cd directly instead.

Examples:
  grove go                 # pick interactively
  grove go feature-x
  grove go -p feature-x    # print the path only
  grove go --copy          # copy the path to the clipboard`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			var target *git.Worktree
			if len(args) == 1 {
				target, _, err = resolveWorktree(ctx, repo, args[0])
				if err != nil {
					return err
				}
			} else {
				if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
					return fmt.Errorf("no worktree name given and not running interactively")
				}
				worktrees, err := git.ListWorktrees(ctx, repo)
				if err != nil {
					return err
				}
				result, err := ui.RunSelector(worktrees)
				if err != nil {
					return err
				}
				if !result.Selected {
					return nil
				}
				target = &result.Worktree
			}

			if copyPath {
				if err := clipboard.WriteAll(target.Path); err != nil {
					return fmt.Errorf("failed to copy path: %w", err)
				}
				l.Printf("Copied %s\n", target.Path)
				return nil
			}

			if pathOnly {
				out.Println(target.Path)
				return nil
			}

			return spawnShell(ctx, target)
		},
	}

	cmd.Flags().BoolVarP(&pathOnly, "path-only", "p", false, "Print the worktree path instead of spawning a shell")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the worktree path to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("path-only", "copy")

	return cmd
}

// spawnShell opens the user's shell inside the worktree and shows the
// shell-integration tip the first time.
func spawnShell(ctx context.Context, wt *git.Worktree) error {
	l := log.FromContext(ctx)

	maybeShowShellTip(l)

	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}

	l.Printf("Entering %s (exit to return)\n", wt.Path)

	proc := exec.CommandContext(ctx, sh)
	proc.Dir = wt.Path
	proc.Env = append(os.Environ(), "GROVE_WORKTREE="+wt.Name())
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		// A non-zero exit from the interactive shell is not our error.
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("failed to start shell: %w", err)
	}
	return nil
}

// maybeShowShellTip prints the shell-integration hint once per machine.
func maybeShowShellTip(l *log.Logger) {
	prefs := config.LoadPrefs()
	if prefs.ShellTipShown {
		return
	}
	l.Printf("\n%s\n\n", shell.Tip(shell.Detect()))
	prefs.ShellTipShown = true
	if err := config.SavePrefs(prefs); err != nil && l.Verbose() {
		l.Printf("could not save preferences: %v\n", err)
	}
}
