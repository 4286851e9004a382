package ui

import (
	"testing"

	"github.com/grovekit/grove/internal/git"
)

func TestFilterWorktreesFuzzy(t *testing.T) {
	t.Parallel()

	worktrees := []git.Worktree{
		{Path: "/p/main", Branch: "main"},
		{Path: "/p/feature-login", Branch: "feature/login"},
		{Path: "/p/feature-logout", Branch: "feature/logout"},
		{Path: "/p/bugfix", Branch: "fix/crash"},
	}

	got := filterWorktrees(worktrees, "login")
	if len(got) == 0 {
		t.Fatal("no matches for 'login'")
	}
	if got[0].Branch != "feature/login" {
		t.Errorf("best match = %q, want feature/login", got[0].Branch)
	}

	// Empty query keeps the full list in order.
	got = filterWorktrees(worktrees, "")
	if len(got) != len(worktrees) || got[0].Branch != "main" {
		t.Errorf("empty query changed the list: %+v", got)
	}

	// Nonsense query matches nothing.
	if got = filterWorktrees(worktrees, "zzzzqqqq"); len(got) != 0 {
		t.Errorf("nonsense query matched %+v", got)
	}
}
