//go:build integration

package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestSync_CheckedOutBranchRefused tests that syncing a branch checked
// out in a worktree is refused with a pull suggestion.
func TestSync_CheckedOutBranchRefused(t *testing.T) {
	// Not parallel - mutates command globals

	tmpDir := t.TempDir()
	repo := setupGroveLayout(t, tmpDir, "widgets")
	useWorkDir(t, filepath.Join(repo.Root, "main"))

	ctx, _ := testContext(t)
	cmd := newSyncCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-b", "main"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("sync accepted a checked-out branch")
	}
	if !strings.Contains(err.Error(), "git pull") {
		t.Errorf("error should suggest git pull, got: %v", err)
	}
}

// TestSync_FetchesBranch tests syncing a branch that only advanced on
// the remote.
func TestSync_FetchesBranch(t *testing.T) {
	// Not parallel - mutates command globals

	tmpDir := t.TempDir()
	repo := setupGroveLayout(t, tmpDir, "widgets")
	useWorkDir(t, filepath.Join(repo.Root, "main"))

	// Create a branch in the clone, then advance it upstream only.
	runGit(t, repo.GitDir, "branch", "release", "main")
	upstream := filepath.Join(resolvePath(t, tmpDir), "widgets-upstream")
	runGit(t, upstream, "checkout", "-b", "release")
	commitInWorktree(t, upstream, "release.txt")
	upstreamHead := strings.TrimSpace(runGit(t, upstream, "rev-parse", "release"))

	ctx, _ := testContext(t)
	cmd := newSyncCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-b", "release"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync command failed: %v", err)
	}

	localHead := strings.TrimSpace(runGit(t, repo.GitDir, "rev-parse", "release"))
	if localHead != upstreamHead {
		t.Errorf("release = %s, want upstream head %s", localHead, upstreamHead)
	}
}

// TestSync_CustomRemote tests that sync fetches from the remote named
// in the config instead of assuming origin.
func TestSync_CustomRemote(t *testing.T) {
	// Not parallel - mutates command globals

	tmpDir := t.TempDir()
	repo := setupGroveLayout(t, tmpDir, "widgets")
	runGit(t, repo.GitDir, "remote", "rename", "origin", "upstream")
	useWorkDir(t, filepath.Join(repo.Root, "main"))
	cfg.Remote = "upstream"

	runGit(t, repo.GitDir, "branch", "release", "main")
	source := filepath.Join(resolvePath(t, tmpDir), "widgets-upstream")
	runGit(t, source, "checkout", "-b", "release")
	commitInWorktree(t, source, "release.txt")
	sourceHead := strings.TrimSpace(runGit(t, source, "rev-parse", "release"))

	ctx, _ := testContext(t)
	cmd := newSyncCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"-b", "release"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("sync command failed: %v", err)
	}

	localHead := strings.TrimSpace(runGit(t, repo.GitDir, "rev-parse", "release"))
	if localHead != sourceHead {
		t.Errorf("release = %s, want upstream head %s", localHead, sourceHead)
	}
}
