package task

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:[ T](\d{2}):(\d{2}))?$`)
	dmyDatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})(?:\s+(\d{2}):(\d{2}))?$`)
)

// ParseDate parses a user- or file-supplied date. It accepts, in order:
//
//	YYYY-MM-DD, optionally followed by a space or T and HH:MM (local time)
//	DD/MM/YYYY, optionally followed by HH:MM (local time)
//	anything the generic parser understands, such as RFC 3339 instants
//
// It reports false for empty input or when no attempt yields a valid time.
func ParseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		if t, ok := localDate(m[1], m[2], m[3], m[4], m[5]); ok {
			return t, true
		}
	}
	if m := dmyDatePattern.FindStringSubmatch(s); m != nil {
		if t, ok := localDate(m[3], m[2], m[1], m[4], m[5]); ok {
			return t, true
		}
	}

	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// localDate builds a local time from matched digit groups. Hour and minute
// may be empty and default to midnight. Out-of-range fields are rejected
// rather than normalized.
func localDate(year, month, day, hour, minute string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, mi := 0, 0
	if hour != "" {
		h, _ = strconv.Atoi(hour)
		mi, _ = strconv.Atoi(minute)
	}
	if mo < 1 || mo > 12 || h > 23 || mi > 59 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(mo), d, h, mi, 0, 0, time.Local)
	if t.Day() != d || int(t.Month()) != mo {
		return time.Time{}, false
	}
	return t, true
}

// parseTimestamp parses a persisted timestamp: RFC 3339 first, then any
// shape ParseDate accepts.
func parseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	return ParseDate(s)
}
