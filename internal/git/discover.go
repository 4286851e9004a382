package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// RepoEnv caches the discovered bare clone path for the process and any
// subshells grove spawns.
const RepoEnv = "GROVE_REPO"

// Discovery failure modes. Callers show these directly, so the texts
// explain what was found instead of just what was missing.
var (
	ErrRepoNotFound = errors.New("not in a grove repository or any of its parent directories")
	ErrPlainRepo    = errors.New("this is a git repository but not a grove-managed worktree setup; grove requires a bare clone with worktrees created by 'grove init'")
)

// Repo identifies a grove-managed repository layout.
type Repo struct {
	GitDir string // the bare clone, e.g. /path/project/project.git
	Root   string // its parent directory, where worktrees live
}

func newRepo(gitDir string) *Repo {
	return &Repo{GitDir: gitDir, Root: filepath.Dir(gitDir)}
}

// Discover locates the bare clone governing startDir.
//
// Resolution order: the GROVE_REPO env hint (verified, never trusted
// blindly), the start dir itself being a bare clone, a *.git child of
// the start dir, then an upward walk interpreting worktree .git files.
// When the walk finds a regular git repository instead, the error says
// so rather than claiming nothing was found.
func Discover(ctx context.Context, startDir string) (*Repo, error) {
	if hint := os.Getenv(RepoEnv); hint != "" {
		if isBareClone(ctx, hint) {
			return newRepo(hint), nil
		}
	}

	if resolved, err := filepath.EvalSymlinks(startDir); err == nil {
		startDir = resolved
	}

	if isBareByStructure(startDir) {
		return cache(newRepo(startDir)), nil
	}

	// Only the starting directory is scanned for a bare child; an
	// unrelated *.git repo higher up the tree must not be adopted.
	if gitDir := scanForBareChild(startDir); gitDir != "" {
		return cache(newRepo(gitDir)), nil
	}

	sawPlainRepo := false
	for dir := startDir; ; {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Lstat(gitPath); err == nil {
			if info.IsDir() {
				sawPlainRepo = true
			} else if gitDir := bareCloneFromGitFile(gitPath); gitDir != "" {
				if isBareByStructure(gitDir) {
					return cache(newRepo(gitDir)), nil
				}
				sawPlainRepo = true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if sawPlainRepo {
		return nil, ErrPlainRepo
	}
	return nil, ErrRepoNotFound
}

func cache(r *Repo) *Repo {
	os.Setenv(RepoEnv, r.GitDir)
	return r
}

// isBareByStructure checks the filesystem shape of a bare clone:
// a HEAD file plus refs/ and objects/ directories, and no .git entry.
func isBareByStructure(dir string) bool {
	head, err := os.Stat(filepath.Join(dir, "HEAD"))
	if err != nil || head.IsDir() {
		return false
	}
	for _, sub := range []string{"refs", "objects"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
		return false
	}
	return true
}

// isBareClone verifies a candidate via git itself. Used for the env hint,
// which may be stale or point anywhere.
func isBareClone(ctx context.Context, dir string) bool {
	output, err := outputGit(ctx, dir, "config", "--bool", "core.bare")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}

// scanForBareChild looks for a *.git subdirectory that is a bare clone.
func scanForBareChild(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), ".git") {
			continue
		}
		candidate := filepath.Join(dir, entry.Name())
		if isBareByStructure(candidate) {
			return candidate
		}
	}
	return ""
}

// bareCloneFromGitFile reads a worktree's .git file and resolves the
// bare clone its gitdir pointer belongs to.
func bareCloneFromGitFile(gitFile string) string {
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return ""
	}

	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return ""
	}

	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == "" {
		return ""
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(filepath.Dir(gitFile), gitdir)
	}
	return extractBareClone(filepath.Clean(gitdir))
}

// extractBareClone strips the worktree administrative suffix from a
// gitdir pointer. The first ".git/worktrees/" occurrence wins so a
// branch literally named "worktrees" can't shift the cut point. Bare
// clones without the ".git" extension fall back to "/worktrees/".
func extractBareClone(gitdir string) string {
	if idx := strings.Index(gitdir, ".git/worktrees/"); idx != -1 {
		return gitdir[:idx+len(".git")]
	}
	if idx := strings.Index(gitdir, "/worktrees/"); idx != -1 {
		return gitdir[:idx]
	}
	return ""
}
