// Package format renders values for terminal display.
//
// It covers the small presentation concerns the list and go commands
// share: relative creation times ("3 days ago", falling back to a
// plain date for old worktrees) and home-relative paths ("~/work/...").
package format
