//go:build darwin

package git

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns when the worktree directory was created, using
// the file's birth time. Zero time means unknown.
func createdTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return info.ModTime()
}
