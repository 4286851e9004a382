package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/duration"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/prune"
	"github.com/grovekit/grove/internal/ui"
	"github.com/grovekit/grove/internal/ui/prompt"
)

func newPruneCmd() *cobra.Command {
	var (
		dryRun    bool
		force     bool
		yes       bool
		base      string
		olderThan string
	)

	cmd := &cobra.Command{
		Use:     "prune",
		Short:   "Remove merged or stale worktrees",
		GroupID: GroupWorktree,
		Long: `Remove worktrees whose branch has been merged into the base branch,
including squash merges, or worktrees older than a given age.

The main worktree, locked worktrees, and detached HEADs are never
pruned. Dirty worktrees are only removed with --force.

Durations accept shorthand like 30d, 2w, 6M, 1y or ISO-8601 like P30D.

Examples:
  grove prune                    # prune branches merged into the base
  grove prune --base develop
  grove prune --older-than 30d
  grove prune --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			opts := prune.Options{Mode: prune.ModeMerge, Now: time.Now()}
			var checker prune.MergeChecker

			if olderThan != "" {
				threshold, err := duration.Parse(olderThan)
				if err != nil {
					return fmt.Errorf("invalid --older-than value: %w", err)
				}
				opts.Mode = prune.ModeAge
				opts.OlderThan = threshold
			} else {
				opts.Base = baseBranch(ctx, repo, base)
				checker = func(branch string) (bool, error) {
					return git.IsBranchMerged(ctx, repo.GitDir, branch, opts.Base)
				}
			}

			worktrees, err := git.ListWorktrees(ctx, repo)
			if err != nil {
				return err
			}

			var sp *ui.Spinner
			if isatty.IsTerminal(os.Stdout.Fd()) && !l.Verbose() {
				sp = ui.NewSpinner("Checking worktrees...")
				sp.Start()
			}
			candidates, warnings := prune.Select(worktrees, opts, checker)
			if sp != nil {
				sp.Stop()
			}

			for _, w := range warnings {
				l.Warnf("skipping %s: %v", w.Worktree.Name(), w.Err)
			}

			if len(candidates) == 0 {
				l.Println("Nothing to prune.")
				return nil
			}

			dirty := 0
			for _, c := range candidates {
				marker := ""
				if c.Worktree.IsDirty {
					dirty++
					marker = " (uncommitted changes)"
				}
				l.Printf("  %s  %s%s\n", c.Worktree.Name(), c.Reason, marker)
			}

			if dirty > 0 && !force {
				return fmt.Errorf("%d worktree(s) have uncommitted changes; use --force to prune them", dirty)
			}

			if dryRun {
				l.Printf("Would remove %d worktree(s) (dry run)\n", len(candidates))
				return nil
			}

			if !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to prune without confirmation; pass --yes in non-interactive use")
				}
				msg := fmt.Sprintf("Remove %d worktree(s)?", len(candidates))
				if dirty > 0 {
					msg = fmt.Sprintf("Remove %d worktree(s), %d with uncommitted changes?", len(candidates), dirty)
				}
				result, err := prompt.Confirm(msg)
				if err != nil {
					return err
				}
				if !result.Confirmed {
					l.Println("Aborted.")
					return nil
				}
			}

			paths := make([]string, len(candidates))
			for i, c := range candidates {
				paths[i] = c.Worktree.Path
			}

			removal := git.RemoveWorktrees(ctx, repo.GitDir, paths, force)
			git.PruneWorktreeRefs(ctx, repo.GitDir)

			for path, err := range removal.Failed {
				l.Warnf("could not remove %s: %v", path, err)
			}
			l.Printf("Removed %d of %d worktree(s)\n", len(removal.Removed), len(candidates))

			if len(removal.Failed) > 0 {
				return fmt.Errorf("%d worktree(s) could not be removed", len(removal.Failed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show what would be removed without removing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Prune worktrees with uncommitted changes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch for merge detection")
	cmd.Flags().StringVar(&olderThan, "older-than", "", "Prune worktrees older than this duration (e.g. 30d, 2w, P1M)")
	cmd.MarkFlagsMutuallyExclusive("base", "older-than")

	return cmd
}
