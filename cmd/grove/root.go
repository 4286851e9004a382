package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupWorktree = "worktree"
	GroupRepo     = "repo"
	GroupUtility  = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "grove",
	Short: "Git worktree manager built on bare clones",
	Long: `grove manages a repository as a bare clone plus one worktree per branch:

  project/
    project.git/   bare clone
    main/          worktree
    feature-x/     worktree

Branches become directories you can work in side by side, without
stashing or switching.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; attach the logger here so
		// --verbose and --quiet take effect.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grove: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Primary data goes to stdout; the logger is attached after flag
	// parsing in PersistentPreRunE.
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'grove -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorktree, Title: "Worktree Commands:"},
		&cobra.Group{ID: GroupRepo, Title: "Repository Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	// Worktree commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGoCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newPruneCmd())
	rootCmd.AddCommand(newPrCmd())

	// Repository commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newSyncCmd())

	// Utility commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newShellInitCmd())
}
