package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/ui"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init <git-url> [directory]",
		Short:   "Clone a repository into the grove layout",
		GroupID: GroupRepo,
		Long: `Clone a repository as a bare clone plus a worktree for its default branch.

The layout created for https://github.com/acme/widgets.git is:

  widgets/
    widgets.git/   bare clone
    main/          worktree for the default branch

Examples:
  grove init https://github.com/acme/widgets.git
  grove init git@github.com:acme/widgets.git my-widgets`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			url := args[0]
			if !git.IsValidURL(url) {
				return fmt.Errorf("invalid git URL %q", url)
			}

			name, err := git.ExtractRepoName(url)
			if err != nil {
				return err
			}
			if len(args) == 2 {
				name = args[1]
			}

			// Refuse to nest one grove layout inside another.
			if _, err := discoverRepo(ctx); err == nil {
				return fmt.Errorf("already inside a grove repository; run init elsewhere")
			}

			root := filepath.Join(workDir, name)
			if _, err := os.Stat(root); err == nil {
				return fmt.Errorf("directory %q already exists", name)
			}
			if err := os.MkdirAll(root, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", root, err)
			}

			gitDir := filepath.Join(root, name+".git")

			var sp *ui.Spinner
			if isatty.IsTerminal(os.Stdout.Fd()) && !l.Verbose() {
				sp = ui.NewSpinner(fmt.Sprintf("Cloning %s...", url))
				sp.Start()
			}

			cloneErr := git.CloneBare(ctx, url, gitDir)
			if sp != nil {
				sp.Stop()
			}
			if cloneErr != nil {
				// Leave nothing half-initialized behind.
				os.RemoveAll(root)
				return cloneErr
			}

			// A fresh clone always has the remote named origin.
			branch := git.GetDefaultBranch(ctx, gitDir, "origin")
			wtPath := filepath.Join(root, branch)
			repo := &git.Repo{GitDir: gitDir, Root: root}
			if err := git.AddWorktree(ctx, repo, "origin", wtPath, branch, "origin/"+branch); err != nil {
				os.RemoveAll(root)
				return err
			}

			runBootstrap(ctx, wtPath)

			out.Printf("Initialized %s\n", name)
			out.Printf("  %s  (bare clone)\n", filepath.Join(name, name+".git"))
			out.Printf("  %s  (worktree)\n", filepath.Join(name, branch))
			out.Printf("\ncd %s to get started\n", filepath.Join(name, branch))
			return nil
		},
	}

	return cmd
}
