package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/github"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/worktree"
)

func newPrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pr <number>",
		Short:   "Check out a pull request into a worktree",
		GroupID: GroupWorktree,
		Long: `Fetch a pull request's head branch and create a worktree for it.

Requires the gh CLI for pull request lookup. The worktree is named
after the PR number and branch, like pr-42-fix-crash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("invalid pull request number %q", args[0])
			}

			if err := github.CheckGH(); err != nil {
				return err
			}

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			pr, err := github.ViewPR(ctx, repo.GitDir, number)
			if err != nil {
				return err
			}
			l.Printf("Pull request #%d: %s\n", pr.Number, pr.HeadRefName)

			path, err := worktree.ResolvePath(pr.WorktreeName(), repo.Root)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, repo)
			if err != nil {
				return err
			}
			if existing := git.WorktreeForBranch(worktrees, pr.LocalBranch()); existing != nil {
				l.Printf("Worktree %s already checks out this pull request\n", existing.Name())
				return nil
			}

			if err := git.FetchPullRequest(ctx, repo.GitDir, remoteName(), number, pr.LocalBranch()); err != nil {
				return fmt.Errorf("failed to fetch pull request #%d: %w", number, err)
			}

			if err := git.AddWorktree(ctx, repo, remoteName(), path, pr.LocalBranch(), ""); err != nil {
				return err
			}

			runBootstrap(ctx, path)

			l.Printf("Created worktree %s for PR #%d\n", pr.WorktreeName(), number)
			return nil
		},
	}

	return cmd
}
