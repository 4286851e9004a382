// Package worktree computes and validates worktree paths inside a
// grove project root.
package worktree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Characters that break on at least one supported filesystem.
const invalidChars = `<>:"|?*`

// ResolvePath turns a worktree name into an absolute path under root.
// Names may contain slashes (branch-style names create nested
// directories) but must stay inside the project root: traversal
// segments, absolute paths, and filesystem-hostile characters are
// rejected before anything touches the disk.
func ResolvePath(name, root string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("worktree name is empty")
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return "", fmt.Errorf("worktree name %q must be relative to the project root", name)
	}
	// Rejected outright rather than cleaned: a silently renamed branch
	// could collide with an existing one.
	if strings.Contains(name, "..") {
		return "", fmt.Errorf("worktree name %q must not contain path traversal", name)
	}
	if strings.ContainsAny(name, invalidChars) {
		return "", fmt.Errorf("worktree name %q contains invalid characters (%s)", name, invalidChars)
	}

	canonicalRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(canonicalRoot); err == nil {
		canonicalRoot = resolved
	}

	path := filepath.Clean(filepath.Join(canonicalRoot, filepath.FromSlash(name)))

	// Containment is rechecked on the canonical form of the final path,
	// so a symlink inside the root can't smuggle the worktree outside it.
	canonical := resolveExisting(path)
	rel, err := filepath.Rel(canonicalRoot, canonical)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("worktree path %q escapes the project root", name)
	}

	return path, nil
}

// resolveExisting canonicalizes the deepest existing ancestor of path
// and re-joins the not-yet-created remainder. The worktree directory
// itself usually doesn't exist yet, but any symlinked ancestor does.
func resolveExisting(path string) string {
	remainder := ""
	for dir := path; ; {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			return filepath.Join(resolved, remainder)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		remainder = filepath.Join(filepath.Base(dir), remainder)
		dir = parent
	}
}
