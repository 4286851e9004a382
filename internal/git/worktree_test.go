package git

import "testing"

func TestIsDirtyFailsOpen(t *testing.T) {
	t.Parallel()

	// A worktree whose status can't be read counts as clean; one
	// broken checkout must not abort a listing.
	if IsDirty(t.Context(), "/nonexistent/worktree/path") {
		t.Error("IsDirty on an unreadable path = true, want false")
	}
}

func testWorktrees() []Worktree {
	return []Worktree{
		{Path: "/work/project/main", Branch: "main", IsMain: true},
		{Path: "/work/project/feature-x", Branch: "feature/x"},
		{Path: "/work/project/bugfix", Branch: "fix/crash-on-load"},
		{Path: "/work/project/detached-wt", Branch: DetachedHead},
	}
}

func TestMatchWorktreeByBranch(t *testing.T) {
	t.Parallel()

	wt := MatchWorktree(testWorktrees(), "feature/x")
	if wt == nil || wt.Path != "/work/project/feature-x" {
		t.Errorf("MatchWorktree(feature/x) = %+v", wt)
	}
}

func TestMatchWorktreeByDirName(t *testing.T) {
	t.Parallel()

	wt := MatchWorktree(testWorktrees(), "bugfix")
	if wt == nil || wt.Branch != "fix/crash-on-load" {
		t.Errorf("MatchWorktree(bugfix) = %+v", wt)
	}
}

func TestMatchWorktreeByPathSuffix(t *testing.T) {
	t.Parallel()

	wt := MatchWorktree(testWorktrees(), "project/main")
	if wt == nil || wt.Branch != "main" {
		t.Errorf("MatchWorktree(project/main) = %+v", wt)
	}
}

func TestMatchWorktreeTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	wt := MatchWorktree(testWorktrees(), "bugfix/")
	if wt == nil || wt.Branch != "fix/crash-on-load" {
		t.Errorf("MatchWorktree(bugfix/) = %+v", wt)
	}
}

func TestMatchWorktreeNoMatch(t *testing.T) {
	t.Parallel()

	if wt := MatchWorktree(testWorktrees(), "nope"); wt != nil {
		t.Errorf("MatchWorktree(nope) = %+v, want nil", wt)
	}
	if wt := MatchWorktree(testWorktrees(), ""); wt != nil {
		t.Errorf("MatchWorktree(\"\") = %+v, want nil", wt)
	}
}

func TestMatchWorktreeBranchWinsOverDirName(t *testing.T) {
	t.Parallel()

	// A branch named like another worktree's directory must win.
	worktrees := []Worktree{
		{Path: "/w/p/one", Branch: "two"},
		{Path: "/w/p/two", Branch: "other"},
	}
	wt := MatchWorktree(worktrees, "two")
	if wt == nil || wt.Path != "/w/p/one" {
		t.Errorf("MatchWorktree(two) = %+v, want branch match", wt)
	}
}

func TestWorktreeForBranch(t *testing.T) {
	t.Parallel()

	wt := WorktreeForBranch(testWorktrees(), "main")
	if wt == nil || !wt.IsMain {
		t.Errorf("WorktreeForBranch(main) = %+v", wt)
	}
	if wt := WorktreeForBranch(testWorktrees(), "gone"); wt != nil {
		t.Errorf("WorktreeForBranch(gone) = %+v, want nil", wt)
	}
}

func TestWorktreeName(t *testing.T) {
	t.Parallel()

	wt := Worktree{Path: "/work/project/feature-x"}
	if got := wt.Name(); got != "feature-x" {
		t.Errorf("Name() = %q, want feature-x", got)
	}
}
