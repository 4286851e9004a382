//go:build linux

package git

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns when the worktree directory was created.
// Linux doesn't expose birth time through syscall.Stat_t, so the
// inode change time is the closest approximation; a fresh worktree's
// ctime is its creation. Zero time means unknown.
func createdTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return info.ModTime()
}
