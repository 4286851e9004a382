package git

import (
	"context"
	"fmt"
	"strings"
)

// IsBranchMerged reports whether branch has been merged into base,
// including squash merges that a plain `git branch --merged` misses.
func IsBranchMerged(ctx context.Context, gitDir, branch, base string) (bool, error) {
	merged, err := isAncestorMerged(ctx, gitDir, branch, base)
	if err != nil {
		return false, err
	}
	if merged {
		return true, nil
	}
	return isSquashMerged(ctx, gitDir, branch, base)
}

// isAncestorMerged checks regular merges via `git branch --merged`.
func isAncestorMerged(ctx context.Context, gitDir, branch, base string) (bool, error) {
	output, err := outputGit(ctx, gitDir, "branch", "--merged", base)
	if err != nil {
		return false, fmt.Errorf("failed to check merge status: %v", err)
	}

	for _, line := range strings.Split(string(output), "\n") {
		trimmed := strings.TrimSpace(line)
		// Handle "branch", "* branch" (current), and "+ branch" (in worktree) formats
		trimmed = strings.TrimPrefix(trimmed, "* ")
		trimmed = strings.TrimPrefix(trimmed, "+ ")
		if trimmed == branch {
			return true, nil
		}
	}
	return false, nil
}

// isSquashMerged detects squash merges by re-diffing the branch's touched
// files directly against base: if the branch's changes are already in
// base, the restricted diff is empty even though histories diverge.
func isSquashMerged(ctx context.Context, gitDir, branch, base string) (bool, error) {
	output, err := outputGit(ctx, gitDir, "diff", "--name-only", base+"..."+branch)
	if err != nil {
		return false, fmt.Errorf("failed to diff %s against %s: %v", branch, base, err)
	}

	files := splitLines(string(output))
	if len(files) == 0 {
		// Branch touches nothing relative to base.
		return true, nil
	}

	args := append([]string{"diff", "--name-only", base, branch, "--"}, files...)
	output, err = outputGit(ctx, gitDir, args...)
	if err != nil {
		return false, fmt.Errorf("failed to diff %s against %s: %v", branch, base, err)
	}
	return len(splitLines(string(output))) == 0, nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
