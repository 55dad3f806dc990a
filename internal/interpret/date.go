package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"ledgerbot/internal/core"
)

// datePattern matches DD/MM, DD-MM, optionally followed by /YYYY or -YYYY.
var datePattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}))?\b`)

// ResolveDate finds a calendar date referenced in text, relative to ref.
//
// Relative keywords win over numeric patterns. "day before yesterday"
// contains "yesterday", so the longer phrase must be checked first.
// A calendrically impossible day/month pair resolves to no date rather
// than an error; the caller falls back to its default.
func ResolveDate(text string, ref core.Date) (core.Date, bool) {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "day before yesterday"):
		return ref.AddDays(-2), true
	case strings.Contains(lower, "yesterday"):
		return ref.AddDays(-1), true
	case strings.Contains(lower, "today"):
		return ref, true
	}

	m := datePattern.FindStringSubmatch(lower)
	if m == nil {
		return core.Date{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := ref.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	d := core.NewDate(year, month, day)
	// time.Date normalizes overflow (31/02 becomes March); a round-trip
	// mismatch means the combination was invalid.
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return core.Date{}, false
	}
	return d, true
}
