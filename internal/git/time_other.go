//go:build !linux && !darwin && !windows

package git

import (
	"os"
	"time"
)

// createdTime falls back to mtime on platforms without a creation
// timestamp. Zero time means unknown.
func createdTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
