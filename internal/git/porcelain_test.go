package git

import "testing"

const samplePorcelain = `worktree /work/project/project.git
bare

worktree /work/project/main
HEAD 1234567890abcdef1234567890abcdef12345678
branch refs/heads/main

worktree /work/project/feature-x
HEAD abcdef1234567890abcdef1234567890abcdef12
branch refs/heads/feature/x
locked checked out on a different machine

worktree /work/project/detached-wt
HEAD fedcba0987654321fedcba0987654321fedcba09
detached

worktree /work/project/stale
HEAD 1111111111111111111111111111111111111111
branch refs/heads/stale
prunable gitdir file points to non-existent location
`

func TestParseWorktreePorcelainDropsBare(t *testing.T) {
	t.Parallel()

	records := parseWorktreePorcelain(samplePorcelain)

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	for _, r := range records {
		if r.bare {
			t.Errorf("bare record %q leaked through", r.path)
		}
	}
}

func TestParseWorktreePorcelainFields(t *testing.T) {
	t.Parallel()

	records := parseWorktreePorcelain(samplePorcelain)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	main := records[0]
	if main.path != "/work/project/main" {
		t.Errorf("path = %q", main.path)
	}
	if main.branch != "main" {
		t.Errorf("branch = %q, refs/heads/ prefix should be stripped", main.branch)
	}
	if main.head != "1234567890abcdef1234567890abcdef12345678" {
		t.Errorf("head = %q", main.head)
	}

	locked := records[1]
	if !locked.locked {
		t.Error("locked flag not parsed")
	}
	if locked.branch != "feature/x" {
		t.Errorf("branch = %q, want feature/x", locked.branch)
	}

	detached := records[2]
	if !detached.detached {
		t.Error("detached flag not parsed")
	}
	if detached.branch != "" {
		t.Errorf("detached record has branch %q", detached.branch)
	}

	stale := records[3]
	if !stale.prunable {
		t.Error("prunable flag not parsed")
	}
}

func TestParseWorktreePorcelainIgnoresUnknownLines(t *testing.T) {
	t.Parallel()

	out := "worktree /w/p/main\nHEAD abc\nbranch refs/heads/main\nfutureattr value\n"
	records := parseWorktreePorcelain(out)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].branch != "main" {
		t.Errorf("branch = %q", records[0].branch)
	}
}

func TestParseWorktreePorcelainEmpty(t *testing.T) {
	t.Parallel()

	if records := parseWorktreePorcelain(""); len(records) != 0 {
		t.Errorf("empty input produced %d records", len(records))
	}
}

func TestCompleteWorktreeDetachedSentinel(t *testing.T) {
	t.Parallel()

	p := partialWorktree{path: "/nonexistent", head: "abc", detached: true}
	wt := completeWorktree(t.Context(), p)

	if wt.Branch != DetachedHead {
		t.Errorf("Branch = %q, want %q", wt.Branch, DetachedHead)
	}
	if wt.IsMain {
		t.Error("detached worktree should not be main")
	}
}

func TestCompleteWorktreeMainDetection(t *testing.T) {
	t.Parallel()

	for _, branch := range []string{"main", "master"} {
		p := partialWorktree{path: "/nonexistent", branch: branch}
		if wt := completeWorktree(t.Context(), p); !wt.IsMain {
			t.Errorf("branch %q should be main", branch)
		}
	}

	p := partialWorktree{path: "/nonexistent", branch: "develop"}
	if wt := completeWorktree(t.Context(), p); wt.IsMain {
		t.Error("develop should not be main")
	}
}
