//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/grovekit/grove/internal/config"
	"github.com/grovekit/grove/internal/git"
	"github.com/grovekit/grove/internal/log"
	"github.com/grovekit/grove/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// testContext builds a command context with logging silenced and
// primary output captured in the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	ctx := log.WithLogger(t.Context(), log.New(&out, false, false))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// useWorkDir points the command globals at dir with a default config,
// restoring them when the test ends. Tests using this must not run in
// parallel.
func useWorkDir(t *testing.T, dir string) {
	t.Helper()

	oldWorkDir, oldCfg := workDir, cfg
	workDir = dir
	defaults := config.Default()
	cfg = &defaults
	t.Cleanup(func() {
		workDir, cfg = oldWorkDir, oldCfg
	})
	// Discovery must not leak state between tests.
	t.Setenv(git.RepoEnv, "")
}

// runGit runs a git command in dir, failing the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupUpstream creates a normal git repo with an initial commit on
// main, to serve as the clone source.
func setupUpstream(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("failed to create upstream dir: %v", err)
	}

	runGit(t, path, "init", "-b", "main")
	runGit(t, path, "config", "user.email", "test@test.com")
	runGit(t, path, "config", "user.name", "Test User")
	runGit(t, path, "config", "commit.gpgsign", "false")

	readme := filepath.Join(path, "README.md")
	if err := os.WriteFile(readme, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGit(t, path, "add", "README.md")
	runGit(t, path, "commit", "-m", "Initial commit")

	return path
}

// setupGroveLayout builds the managed layout under dir: a bare clone
// of a fresh upstream plus a main worktree. Returns the repo handle.
func setupGroveLayout(t *testing.T, dir, name string) *git.Repo {
	t.Helper()

	dir = resolvePath(t, dir)
	upstream := setupUpstream(t, dir, name+"-upstream")

	root := filepath.Join(dir, name)
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create project root: %v", err)
	}

	gitDir := filepath.Join(root, name+".git")
	runGit(t, dir, "clone", "--bare", upstream, gitDir)
	runGit(t, gitDir, "config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*")
	runGit(t, gitDir, "fetch", "origin")
	runGit(t, gitDir, "config", "user.email", "test@test.com")
	runGit(t, gitDir, "config", "user.name", "Test User")
	runGit(t, gitDir, "config", "commit.gpgsign", "false")

	runGit(t, gitDir, "worktree", "add", filepath.Join(root, "main"), "main")

	return &git.Repo{GitDir: gitDir, Root: root}
}

// makeDirty creates uncommitted changes in a worktree.
func makeDirty(t *testing.T, worktreePath string) {
	t.Helper()

	path := filepath.Join(worktreePath, "dirty.txt")
	if err := os.WriteFile(path, []byte("uncommitted\n"), 0644); err != nil {
		t.Fatalf("failed to create dirty file: %v", err)
	}
}

// commitInWorktree creates a file and commits it in the worktree.
func commitInWorktree(t *testing.T, worktreePath, filename string) {
	t.Helper()

	path := filepath.Join(worktreePath, filename)
	if err := os.WriteFile(path, []byte("content for "+filename+"\n"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	runGit(t, worktreePath, "add", filename)
	runGit(t, worktreePath, "commit", "-m", "Add "+filename)
}

// mergeIntoMain merges a branch into main inside the main worktree.
func mergeIntoMain(t *testing.T, repo *git.Repo, branch string) {
	t.Helper()

	mainPath := filepath.Join(repo.Root, "main")
	runGit(t, mainPath, "merge", branch, "--no-edit")
}
