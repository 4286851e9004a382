package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RelativeTime renders a creation time the way humans scan a listing:
// recent times relative, older ones as a date. A zero time means the
// creation time couldn't be determined.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return plural(int(elapsed.Minutes()), "minute")
	case elapsed < 24*time.Hour:
		return plural(int(elapsed.Hours()), "hour")
	case elapsed < 7*24*time.Hour:
		return plural(int(elapsed.Hours()/24), "day")
	case elapsed < 35*24*time.Hour:
		return plural(int(elapsed.Hours()/24/7), "week")
	default:
		return t.Format("2006-01-02")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TildePath shortens a path by replacing the home directory with ~.
func TildePath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
