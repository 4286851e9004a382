// Package ui provides terminal UI components for grove command output.
//
// This package uses the Charm libraries (bubbletea, bubbles, lipgloss)
// for styled terminal output.
//
// # Components
//
//   - [RunSelector]: Fuzzy-filtered worktree picker used by `grove go`
//     when no name is given
//   - [Spinner]: Non-interactive progress indication for slow git
//     operations like the initial clone
//
// Interactive components must only run on a TTY; callers gate on
// isatty before invoking them.
package ui
