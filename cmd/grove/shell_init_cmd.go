package main

import (
	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/output"
	"github.com/grovekit/grove/internal/shell"
)

func newShellInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell-init [shell]",
		Short:   "Print the shell integration script",
		GroupID: GroupUtility,
		Long: `Print a gcd() wrapper function that changes the current shell's
directory to a worktree, using 'grove go --path-only'.

Without an argument the shell is detected from the environment.

Installation:
  bash/zsh:    eval "$(grove shell-init bash)"
  fish:        grove shell-init fish | source
  powershell:  Invoke-Expression (grove shell-init powershell | Out-String)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			kind := shell.Detect()
			if len(args) == 1 {
				var err error
				kind, err = shell.ParseKind(args[0])
				if err != nil {
					return err
				}
			}

			script, err := shell.Script(kind)
			if err != nil {
				return err
			}
			out.Print(script)
			return nil
		},
	}

	return cmd
}
