package prune

import (
	"errors"
	"testing"
	"time"

	"github.com/grovekit/grove/internal/git"
)

func mergeModeWorktrees() []git.Worktree {
	return []git.Worktree{
		{Path: "/p/main", Branch: "main", IsMain: true},
		{Path: "/p/merged-1", Branch: "merged-1"},
		{Path: "/p/open", Branch: "open"},
		{Path: "/p/locked", Branch: "merged-2", IsLocked: true},
		{Path: "/p/detached", Branch: git.DetachedHead},
		{Path: "/p/merged-3", Branch: "merged-3"},
	}
}

func TestSelectMergeMode(t *testing.T) {
	t.Parallel()

	merged := map[string]bool{"merged-1": true, "merged-2": true, "merged-3": true}
	checker := func(branch string) (bool, error) { return merged[branch], nil }

	candidates, warnings := Select(mergeModeWorktrees(), Options{Mode: ModeMerge, Base: "main"}, checker)

	if len(warnings) != 0 {
		t.Errorf("warnings = %+v", warnings)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(candidates), candidates)
	}
	// Input order is preserved.
	if candidates[0].Worktree.Branch != "merged-1" || candidates[1].Worktree.Branch != "merged-3" {
		t.Errorf("candidates out of order: %+v", candidates)
	}
}

func TestSelectExcludesProtected(t *testing.T) {
	t.Parallel()

	allMerged := func(string) (bool, error) { return true, nil }
	candidates, _ := Select(mergeModeWorktrees(), Options{Mode: ModeMerge, Base: "main"}, allMerged)

	for _, c := range candidates {
		wt := c.Worktree
		if wt.IsMain || wt.IsLocked || wt.Branch == git.DetachedHead {
			t.Errorf("protected worktree selected: %+v", wt)
		}
	}
}

func TestSelectExcludesBaseWorktree(t *testing.T) {
	t.Parallel()

	worktrees := []git.Worktree{
		{Path: "/p/main", Branch: "main", IsMain: true},
		{Path: "/p/develop", Branch: "develop"},
		{Path: "/p/feature", Branch: "feature"},
	}
	allMerged := func(string) (bool, error) { return true, nil }

	candidates, _ := Select(worktrees, Options{Mode: ModeMerge, Base: "develop"}, allMerged)

	for _, c := range candidates {
		if c.Worktree.Branch == "develop" {
			t.Error("base branch's own worktree selected for removal")
		}
	}
	if len(candidates) != 1 || candidates[0].Worktree.Branch != "feature" {
		t.Errorf("candidates = %+v", candidates)
	}
}

func TestSelectMergeErrorsBecomeWarnings(t *testing.T) {
	t.Parallel()

	checker := func(branch string) (bool, error) {
		if branch == "open" {
			return false, errors.New("ref not found")
		}
		return true, nil
	}

	candidates, warnings := Select(mergeModeWorktrees(), Options{Mode: ModeMerge, Base: "main"}, checker)

	if len(warnings) != 1 || warnings[0].Worktree.Branch != "open" {
		t.Fatalf("warnings = %+v", warnings)
	}
	for _, c := range candidates {
		if c.Worktree.Branch == "open" {
			t.Error("worktree with failed merge check was selected")
		}
	}
}

func TestSelectAgeMode(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	worktrees := []git.Worktree{
		{Path: "/p/main", Branch: "main", IsMain: true, CreatedAt: now.AddDate(-1, 0, 0)},
		{Path: "/p/old", Branch: "old", CreatedAt: now.AddDate(0, -2, 0)},
		{Path: "/p/fresh", Branch: "fresh", CreatedAt: now.AddDate(0, 0, -2)},
		{Path: "/p/unknown", Branch: "unknown-age"},
	}

	opts := Options{Mode: ModeAge, OlderThan: 30 * 24 * time.Hour, Now: now}
	candidates, warnings := Select(worktrees, opts, nil)

	if len(warnings) != 0 {
		t.Errorf("warnings = %+v", warnings)
	}
	if len(candidates) != 1 || candidates[0].Worktree.Branch != "old" {
		t.Fatalf("candidates = %+v, want only the old worktree", candidates)
	}
}

func TestSelectAgeModeUnknownExcluded(t *testing.T) {
	t.Parallel()

	now := time.Now()
	worktrees := []git.Worktree{
		{Path: "/p/unknown", Branch: "unknown-age"}, // zero CreatedAt
	}

	candidates, _ := Select(worktrees, Options{Mode: ModeAge, OlderThan: time.Hour, Now: now}, nil)
	if len(candidates) != 0 {
		t.Errorf("worktree with unknown age selected: %+v", candidates)
	}
}
