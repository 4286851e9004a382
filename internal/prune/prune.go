// Package prune decides which worktrees are safe to remove.
package prune

import (
	"fmt"
	"time"

	"github.com/grovekit/grove/internal/git"
)

// Mode selects the pruning criterion.
type Mode int

const (
	// ModeMerge removes worktrees whose branch is merged into the base branch.
	ModeMerge Mode = iota
	// ModeAge removes worktrees older than a threshold.
	ModeAge
)

// Options configures a selection run. Base applies to ModeMerge,
// OlderThan and Now to ModeAge.
type Options struct {
	Mode      Mode
	Base      string
	OlderThan time.Duration
	Now       time.Time
}

// MergeChecker reports whether a branch is merged into the base branch.
// Wired to [git.IsBranchMerged] in production, stubbed in tests.
type MergeChecker func(branch string) (bool, error)

// Candidate is a worktree selected for removal.
type Candidate struct {
	Worktree git.Worktree
	Reason   string
}

// Warning records a worktree whose merge status couldn't be determined.
// Such worktrees are skipped, never removed on a guess.
type Warning struct {
	Worktree git.Worktree
	Err      error
}

// Select filters worktrees down to removal candidates, preserving input
// order. The main worktree, locked worktrees, detached HEADs, and the
// base branch's own worktree are never candidates.
func Select(worktrees []git.Worktree, opts Options, isMerged MergeChecker) ([]Candidate, []Warning) {
	var candidates []Candidate
	var warnings []Warning

	for _, wt := range worktrees {
		if wt.IsMain || wt.IsLocked || wt.Branch == git.DetachedHead {
			continue
		}
		if opts.Mode == ModeMerge && wt.Branch == opts.Base {
			continue
		}

		switch opts.Mode {
		case ModeAge:
			if wt.CreatedAt.IsZero() {
				// Unknown age never qualifies.
				continue
			}
			age := opts.Now.Sub(wt.CreatedAt)
			if age >= opts.OlderThan {
				candidates = append(candidates, Candidate{
					Worktree: wt,
					Reason:   fmt.Sprintf("older than threshold (created %s)", wt.CreatedAt.Format("2006-01-02")),
				})
			}

		case ModeMerge:
			merged, err := isMerged(wt.Branch)
			if err != nil {
				warnings = append(warnings, Warning{Worktree: wt, Err: err})
				continue
			}
			if merged {
				candidates = append(candidates, Candidate{
					Worktree: wt,
					Reason:   fmt.Sprintf("merged into %s", opts.Base),
				})
			}
		}
	}

	return candidates, warnings
}
