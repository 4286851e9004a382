package git

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DetachedHead is the branch value reported for worktrees without a branch.
const DetachedHead = "detached HEAD"

// MainBranches are branch names treated as the primary worktree.
var MainBranches = []string{"main", "master"}

// Worktree is a fully populated worktree model.
type Worktree struct {
	Path       string    `json:"path"`
	Branch     string    `json:"branch"`
	Head       string    `json:"head"`
	CreatedAt  time.Time `json:"createdAt"`
	IsDirty    bool      `json:"isDirty"`
	IsLocked   bool      `json:"isLocked"`
	IsPrunable bool      `json:"isPrunable"`
	IsMain     bool      `json:"isMain"`
}

// Name returns the worktree's directory name.
func (w Worktree) Name() string {
	return filepath.Base(w.Path)
}

// ListWorktrees returns all worktrees of the repo, completed with
// dirty state and creation time. Dirty checks run one git subprocess
// per worktree, so they are fanned out; results keep porcelain order.
func ListWorktrees(ctx context.Context, repo *Repo) ([]Worktree, error) {
	output, err := outputGit(ctx, repo.GitDir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %v", err)
	}

	partials := parseWorktreePorcelain(string(output))

	results := make([]Worktree, len(partials))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8) // Bound concurrent git operations

	for i, p := range partials {
		g.Go(func() error {
			results[i] = completeWorktree(ctx, p)
			return nil
		})
	}

	_ = g.Wait() // goroutines never return errors, dirty checks fail open

	return results, nil
}

// completeWorktree fills in the fields the porcelain output doesn't carry.
func completeWorktree(ctx context.Context, p partialWorktree) Worktree {
	branch := p.branch
	if p.detached || branch == "" {
		branch = DetachedHead
	}

	return Worktree{
		Path:       p.path,
		Branch:     branch,
		Head:       p.head,
		CreatedAt:  createdTime(p.path),
		IsDirty:    IsDirty(ctx, p.path),
		IsLocked:   p.locked,
		IsPrunable: p.prunable,
		IsMain:     slices.Contains(MainBranches, branch),
	}
}

// IsDirty returns true if the worktree has uncommitted changes or untracked files.
// Errors are treated as clean so a broken checkout never blocks other operations.
func IsDirty(ctx context.Context, path string) bool {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}

// GetDefaultBranch returns the default branch name for the remote (e.g., "main" or "master")
func GetDefaultBranch(ctx context.Context, gitDir, remote string) string {
	output, err := outputGit(ctx, gitDir, "symbolic-ref", "refs/remotes/"+remote+"/HEAD")
	if err == nil {
		// Output is like "refs/remotes/origin/main"
		ref := strings.TrimSpace(string(output))
		if parts := strings.Split(ref, "/"); len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if runGit(ctx, gitDir, "rev-parse", "--verify", remote+"/main") == nil {
		return "main"
	}
	if runGit(ctx, gitDir, "rev-parse", "--verify", remote+"/master") == nil {
		return "master"
	}

	return "main"
}

// BranchExists checks if a local branch exists in the repo.
func BranchExists(ctx context.Context, gitDir, branch string) bool {
	return runGit(ctx, gitDir, "rev-parse", "--verify", "refs/heads/"+branch) == nil
}

// EnsureTrackingRef makes sure <remote>/<branch> exists locally, fetching it
// if necessary. Falls back to the default branch's tracking ref when the
// branch doesn't exist on the remote.
func EnsureTrackingRef(ctx context.Context, gitDir, remote, branch string) string {
	ref := remote + "/" + branch
	if runGit(ctx, gitDir, "rev-parse", "--verify", ref) == nil {
		return ref
	}
	if err := runGit(ctx, gitDir, "fetch", remote, branch); err == nil {
		if runGit(ctx, gitDir, "rev-parse", "--verify", ref) == nil {
			return ref
		}
	}
	return remote + "/" + GetDefaultBranch(ctx, gitDir, remote)
}

// AddWorktree creates a worktree at path. If branch exists locally it is
// checked out directly, otherwise a new branch is created tracking trackRef.
func AddWorktree(ctx context.Context, repo *Repo, remote, path, branch, trackRef string) error {
	if BranchExists(ctx, repo.GitDir, branch) {
		if err := runGit(ctx, repo.GitDir, "worktree", "add", path, branch); err != nil {
			return fmt.Errorf("failed to create worktree: %v", err)
		}
		return nil
	}

	if trackRef == "" {
		trackRef = EnsureTrackingRef(ctx, repo.GitDir, remote, branch)
	}
	if err := runGit(ctx, repo.GitDir, "worktree", "add", "-b", branch, "--track", path, trackRef); err != nil {
		return fmt.Errorf("failed to create worktree: %v", err)
	}
	return nil
}

// RemoveWorktree removes a single worktree checkout.
func RemoveWorktree(ctx context.Context, gitDir, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	if err := runGit(ctx, gitDir, args...); err != nil {
		return fmt.Errorf("failed to remove worktree %s: %v", path, err)
	}
	return nil
}

// RemovalResult tallies a batch removal.
type RemovalResult struct {
	Removed []string
	Failed  map[string]error
}

// RemoveWorktrees removes worktrees one by one, continuing past failures.
func RemoveWorktrees(ctx context.Context, gitDir string, paths []string, force bool) RemovalResult {
	res := RemovalResult{Failed: make(map[string]error)}
	for _, path := range paths {
		if err := RemoveWorktree(ctx, gitDir, path, force); err != nil {
			res.Failed[path] = err
			continue
		}
		res.Removed = append(res.Removed, path)
	}
	return res
}

// PruneWorktreeRefs drops stale administrative entries after removals.
func PruneWorktreeRefs(ctx context.Context, gitDir string) {
	_ = runGit(ctx, gitDir, "worktree", "prune")
}

// SyncBranch fetches branch from the remote directly into the local branch ref.
func SyncBranch(ctx context.Context, gitDir, remote, branch string) error {
	if err := runGit(ctx, gitDir, "fetch", remote, fmt.Sprintf("%s:%s", branch, branch)); err != nil {
		return fmt.Errorf("failed to sync %s: %v", branch, err)
	}
	return nil
}

// FetchPullRequest fetches a pull request head into a local branch.
func FetchPullRequest(ctx context.Context, gitDir, remote string, number int, localBranch string) error {
	refspec := fmt.Sprintf("pull/%d/head:%s", number, localBranch)
	if err := runGit(ctx, gitDir, "fetch", remote, refspec); err != nil {
		return fmt.Errorf("failed to fetch pull request #%d: %v", number, err)
	}
	return nil
}

// MatchWorktree finds a worktree by name. Tries, in order: exact branch
// match, directory basename match, then a path-suffix match for inputs
// like "feature/x". Trailing slashes on the input are ignored.
func MatchWorktree(worktrees []Worktree, name string) *Worktree {
	name = strings.TrimRight(name, "/")
	if name == "" {
		return nil
	}

	for i, wt := range worktrees {
		if wt.Branch == name {
			return &worktrees[i]
		}
	}
	for i, wt := range worktrees {
		if filepath.Base(wt.Path) == name {
			return &worktrees[i]
		}
	}
	for i, wt := range worktrees {
		if strings.HasSuffix(wt.Path, "/"+name) {
			return &worktrees[i]
		}
	}
	return nil
}

// WorktreeForBranch returns the worktree that has branch checked out, if any.
func WorktreeForBranch(worktrees []Worktree, branch string) *Worktree {
	for i, wt := range worktrees {
		if wt.Branch == branch {
			return &worktrees[i]
		}
	}
	return nil
}
