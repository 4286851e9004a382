// Package duration parses human age thresholds like "30d" or "P1Y".
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar units use fixed lengths. Age thresholds don't need calendar
// arithmetic, and fixed constants keep "30d" == "1M" predictable.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var shorthandRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([dDwWMmyYhHsS])$`)

// iso8601Re matches durations like P1Y2M3W4DT5H6M7S. Date and time
// parts are split by T because M means months before it and minutes after.
// Input is uppercased before matching, so the M ambiguity is resolved
// purely by position and "p6m" still means six months.
var iso8601Re = regexp.MustCompile(`^P(?:(\d+(?:\.\d+)?)Y)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)W)?(?:(\d+(?:\.\d+)?)D)?(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Parse converts a duration string to a time.Duration. Accepts the
// shorthand forms 30d, 2w, 6M, 1y, 12h, 30m, 45s (uppercase M is
// months, lowercase m is minutes) and ISO-8601 durations like P1Y or
// PT12H, which are case-insensitive. Zero-length durations are rejected.
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var d time.Duration
	var ok bool
	if strings.HasPrefix(s, "P") || strings.HasPrefix(s, "p") {
		d, ok = parseISO8601(s)
	} else {
		d, ok = parseShorthand(s)
	}
	if !ok {
		return 0, fmt.Errorf("invalid duration %q (use forms like 30d, 2w, 6M, 1y, or ISO-8601 like P1Y)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be greater than zero", s)
	}
	return d, nil
}

func parseShorthand(s string) (time.Duration, bool) {
	m := shorthandRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	var unit time.Duration
	switch m[2] {
	case "d", "D":
		unit = Day
	case "w", "W":
		unit = Week
	case "M":
		unit = Month
	case "m":
		unit = time.Minute
	case "y", "Y":
		unit = Year
	case "h", "H":
		unit = time.Hour
	case "s", "S":
		unit = time.Second
	default:
		return 0, false
	}
	return time.Duration(value * float64(unit)), true
}

func parseISO8601(s string) (time.Duration, bool) {
	m := iso8601Re.FindStringSubmatch(strings.ToUpper(s))
	if m == nil {
		return 0, false
	}

	units := []time.Duration{Year, Month, Week, Day, time.Hour, time.Minute, time.Second}
	var total time.Duration
	matched := false
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		value, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil {
			return 0, false
		}
		total += time.Duration(value * float64(unit))
		matched = true
	}
	return total, matched
}
