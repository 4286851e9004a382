//go:build windows

package git

import (
	"os"
	"syscall"
	"time"
)

// createdTime returns when the worktree directory was created, using
// the NTFS creation timestamp. Zero time means unknown.
func createdTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	if attr, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, attr.CreationTime.Nanoseconds())
	}
	return info.ModTime()
}
