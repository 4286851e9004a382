package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/ui/prompt"
)

func newRemoveCmd() *cobra.Command {
	var (
		force bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:     "remove <name>",
		Short:   "Remove a worktree",
		GroupID: GroupWorktree,
		Aliases: []string{"rm"},
		Long: `Remove a worktree and prune its administrative files.

The main worktree and locked worktrees are never removed. Worktrees
with uncommitted changes require --force.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			target, _, err := resolveWorktree(ctx, repo, args[0])
			if err != nil {
				return err
			}

			if target.IsMain {
				return fmt.Errorf("refusing to remove the main worktree %q", target.Name())
			}
			if target.IsLocked {
				return fmt.Errorf("worktree %q is locked; unlock it first with 'git worktree unlock'", target.Name())
			}
			if target.IsDirty && !force {
				return fmt.Errorf("worktree %q has uncommitted changes; use --force to remove it anyway", target.Name())
			}

			if !yes {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to remove without confirmation; pass --yes in non-interactive use")
				}
				msg := fmt.Sprintf("Remove worktree %s (%s)?", target.Name(), target.Branch)
				if target.IsDirty {
					msg = fmt.Sprintf("Remove worktree %s (%s) and discard uncommitted changes?", target.Name(), target.Branch)
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

			if err := git.RemoveWorktree(ctx, repo.GitDir, target.Path, force); err != nil {
				return err
			}
			git.PruneWorktreeRefs(ctx, repo.GitDir)

			l.Printf("Removed worktree %s\n", target.Name())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even with uncommitted changes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
