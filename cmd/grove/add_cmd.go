package main

import (
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/worktree"
)

func newAddCmd() *cobra.Command {
	var track string

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a worktree for a branch",
		GroupID: GroupWorktree,
		Aliases: []string{"a"},
		Long: `Create a worktree for a branch.

If the branch already exists (locally or on the remote) it is checked
out; otherwise a new branch is created tracking the remote. Names with
slashes create nested directories.

Examples:
  grove add feature-x
  grove add feature/login
  grove add hotfix -t origin/release-2.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			name := args[0]
			path, err := worktree.ResolvePath(name, repo.Root)
			if err != nil {
				return err
			}

			if err := git.AddWorktree(ctx, repo, remoteName(), path, name, track); err != nil {
				return err
			}

			runBootstrap(ctx, path)

			out.Printf("Created worktree %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&track, "track", "t", "", "Remote ref the new branch should track (default: <remote>/<name>)")

	return cmd
}
