package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
)

func newSyncCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Update a branch from the remote",
		GroupID: GroupRepo,
		Long: `Fetch a branch from the remote directly into the bare clone.

By default the base branch is synced. A branch currently checked out
in a worktree can't be fast-forwarded this way; pull from inside that
worktree instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			target := baseBranch(ctx, repo, branch)

			worktrees, err := git.ListWorktrees(ctx, repo)
			if err != nil {
				return err
			}
			if wt := git.WorktreeForBranch(worktrees, target); wt != nil {
				return fmt.Errorf("branch %q is checked out in worktree %s; run 'git pull' there instead", target, wt.Name())
			}

			if err := git.SyncBranch(ctx, repo.GitDir, remoteName(), target); err != nil {
				return fmt.Errorf("failed to sync %s: %w", target, err)
			}

			l.Printf("Synced %s from origin\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to sync (defaults to the base branch)")

	return cmd
}
