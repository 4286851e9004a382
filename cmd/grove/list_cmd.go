package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/format"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui/styles"
)

func newListCmd() *cobra.Command {
	var (
		asJSON    bool
		details   bool
		dirtyOnly bool
		locked    bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		GroupID: GroupWorktree,
		Aliases: []string{"ls"},
		Long: `List the worktrees of the current grove repository.

Examples:
  grove list              # names and branches
  grove list --details    # plus age, path, and state
  grove list --dirty      # only worktrees with uncommitted changes
  grove list --json       # machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			repo, err := discoverRepo(ctx)
			if err != nil {
				return err
			}

			worktrees, err := git.ListWorktrees(ctx, repo)
			if err != nil {
				return err
			}

			filtered := worktrees[:0:0]
			for _, wt := range worktrees {
				if dirtyOnly && !wt.IsDirty {
					continue
				}
				if locked && !wt.IsLocked {
					continue
				}
				filtered = append(filtered, wt)
			}

			if asJSON {
				data, err := json.MarshalIndent(filtered, "", "  ")
				if err != nil {
					return err
				}
				out.Println(string(data))
				return nil
			}

			if len(filtered) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			now := time.Now()
			for _, wt := range filtered {
				out.Println(formatWorktreeLine(wt, now, details))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "Show age, path, and state")
	cmd.Flags().BoolVar(&dirtyOnly, "dirty", false, "Only worktrees with uncommitted changes")
	cmd.Flags().BoolVar(&locked, "locked", false, "Only locked worktrees")

	return cmd
}

// formatWorktreeLine renders one listing row.
func formatWorktreeLine(wt git.Worktree, now time.Time, details bool) string {
	name := wt.Name()
	if wt.IsMain {
		name = styles.AccentStyle.Render(name)
	}

	var markers string
	if wt.IsDirty {
		markers += styles.ErrorStyle.Render(" *")
	}
	if wt.IsLocked {
		markers += styles.MutedStyle.Render(" [locked]")
	}
	if wt.IsPrunable {
		markers += styles.MutedStyle.Render(" [prunable]")
	}

	line := fmt.Sprintf("%-24s %s%s", name, wt.Branch, markers)
	if !details {
		return line
	}

	age := format.RelativeTime(wt.CreatedAt, now)
	return fmt.Sprintf("%s\n    %s\n    created %s",
		line,
		styles.MutedStyle.Render(format.TildePath(wt.Path)),
		age)
}
