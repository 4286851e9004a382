package git

import "strings"

// partialWorktree holds the fields of a single record from
// `git worktree list --porcelain` before completion.
type partialWorktree struct {
	path     string
	head     string
	branch   string
	detached bool
	locked   bool
	prunable bool
	bare     bool
}

func (p partialWorktree) started() bool {
	return p.path != ""
}

// parseWorktreePorcelain parses `git worktree list --porcelain` output.
// Records describing the bare clone itself are dropped; it is not a
// checkout. Unknown attribute lines are ignored so newer git versions
// don't break the parser.
func parseWorktreePorcelain(out string) []partialWorktree {
	var records []partialWorktree
	var current partialWorktree

	flush := func() {
		if current.started() && !current.bare {
			records = append(records, current)
		}
		current = partialWorktree{}
	}

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			current.head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			current.branch = strings.TrimPrefix(ref, "refs/heads/")
		case line == "detached":
			current.detached = true
		case line == "bare":
			current.bare = true
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.locked = true
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.prunable = true
		}
	}
	flush()

	return records
}
