package settlement

import (
	"strconv"
	"strings"
	"time"
)

// months maps the first three letters of an English month name to its
// calendar month. Matching is case-insensitive and accepts both full names
// and abbreviations.
var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate converts a free-form date string into a calendar date. Accepted
// shapes: slash or dash delimited M/D/Y (numeric or worded month), and the
// worded form "Month D, YYYY". Two-digit years mean 2000+YY. Anything else,
// including calendar-invalid combinations like February 31, is reported as
// absent rather than an error: the input originates from a user-editable
// control.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	normalized := strings.ReplaceAll(s, "-", "/")
	if parts := strings.Split(normalized, "/"); len(parts) == 3 {
		return assembleDate(parts[0], parts[1], parts[2])
	}

	// Worded form: "December 15, 2025" or "Dec 15 2025".
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 3 {
		return assembleDate(fields[0], fields[1], fields[2])
	}

	return time.Time{}, false
}

func assembleDate(monthTok, dayTok, yearTok string) (time.Time, bool) {
	month, ok := parseMonth(monthTok)
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(dayTok))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearTok))
	if err != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}

	// time.Date silently rolls invalid combinations over (Feb 31 becomes
	// Mar 2/3), so round-trip the components to reject them.
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func parseMonth(tok string) (time.Month, bool) {
	tok = strings.TrimSpace(tok)
	if n, err := strconv.Atoi(tok); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	if len(tok) < 3 {
		return 0, false
	}
	month, ok := months[strings.ToLower(tok[:3])]
	return month, ok
}
