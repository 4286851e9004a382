// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers, aliases).
//
// # Repository Layout
//
// grove manages a bare clone plus one worktree per branch:
//
//	project/
//	  project.git/   <- bare clone (the [Repo.GitDir])
//	  main/          <- worktree
//	  feature-x/     <- worktree
//
// [Discover] locates the bare clone from anywhere inside this layout.
//
// # Worktree Operations
//
//   - [ListWorktrees]: Parse `git worktree list --porcelain` and complete
//     each entry with dirty state and creation time
//   - [AddWorktree]: Create worktrees for new or existing branches
//   - [RemoveWorktree], [RemoveWorktrees]: Remove worktrees, batch form
//     continues past failures
//   - [IsBranchMerged]: Merge detection including squash merges
package git
