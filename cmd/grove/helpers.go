package main

import (
	"context"
	"fmt"

	"github.com/grovekit/grove/internal/bootstrap"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
)

// discoverRepo locates the grove repository governing the working directory.
func discoverRepo(ctx context.Context) (*git.Repo, error) {
	return git.Discover(ctx, workDir)
}

// resolveWorktree finds a worktree by name among the repo's worktrees.
func resolveWorktree(ctx context.Context, repo *git.Repo, name string) (*git.Worktree, []git.Worktree, error) {
	worktrees, err := git.ListWorktrees(ctx, repo)
	if err != nil {
		return nil, nil, err
	}
	wt := git.MatchWorktree(worktrees, name)
	if wt == nil {
		return nil, worktrees, fmt.Errorf("no worktree matches %q", name)
	}
	return wt, worktrees, nil
}

// baseBranch resolves the base branch for merge checks: the --base flag,
// then the configured default, then the remote's default branch.
func baseBranch(ctx context.Context, repo *git.Repo, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg != nil && cfg.DefaultBase != "" {
		return cfg.DefaultBase
	}
	return git.GetDefaultBranch(ctx, repo.GitDir, remoteName())
}

// remoteName returns the configured remote, defaulting to origin.
func remoteName() string {
	if cfg != nil && cfg.Remote != "" {
		return cfg.Remote
	}
	return "origin"
}

// runBootstrap executes the configured setup commands in a new worktree
// and reports the outcome. Bootstrap failures are reported but don't
// fail the command; the worktree itself was created.
func runBootstrap(ctx context.Context, dir string) {
	l := log.FromContext(ctx)

	raw := cfg.BootstrapCommands()
	if len(raw) == 0 {
		return
	}

	commands := make([]bootstrap.Command, len(raw))
	for i, argv := range raw {
		commands[i] = bootstrap.Command(argv)
	}

	l.Printf("Running %d bootstrap command(s)...\n", len(commands))
	summary := bootstrap.Run(ctx, dir, commands)

	if summary.Ok() {
		l.Printf("Bootstrap finished: %d/%d succeeded\n", summary.Succeeded, summary.Total)
		return
	}
	l.Warnf("bootstrap finished with failures: %d/%d succeeded", summary.Succeeded, summary.Total)
	for _, f := range summary.Failed {
		l.Warnf("  %s: %s", f.Display, f.Reason)
	}
}
