package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ParseTimestamp converts an absolute date or date-time string into a time.Time.
// An empty input answers the zero time.
func ParseTimestamp(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, nil
	}

	layouts := []string{
		time.RFC3339,          // 2026-01-02T15:04:05Z
		"2006-01-02 15:04:05", // 2026-01-02 15:04:05 (Space separator)
		"2006-01-02T15:04:05", // 2026-01-02T15:04:05 (no zone)
		"2006-01-02T15:04",    // 2026-01-02T15:04 (HTML datetime-local)
		"2006-01-02 15:04",    // 2026-01-02 15:04
		"2006-01-02",          // 2026-01-02 (Date only)
	}

	for _, layout := range layouts {
		var t time.Time
		var err error

		if strings.Contains(layout, "Z") || strings.Contains(layout, "-07") {
			t, err = time.Parse(layout, input)
		} else {
			t, err = time.ParseInLocation(layout, input, time.Local)
		}

		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q: use ISO8601 date or date-time", input)
}

// CollapseSpace replaces runs of whitespace with a single space and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LimitToClosestWord shortens s to at most limit characters without cutting a word,
// appending suffix when anything was removed. The suffix counts towards the limit; when
// it does not fit, s is cut hard to limit without one.
func LimitToClosestWord(s string, limit int, suffix string) string {
	s = CollapseSpace(s)
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	budget := limit - utf8.RuneCountInString(suffix)
	if budget <= 0 {
		return string([]rune(s)[:limit])
	}

	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(s) {
		n := utf8.RuneCountInString(word)
		if count > 0 {
			n++
		}
		if count+n > budget {
			break
		}
		if count > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		count += n
	}

	out := strings.TrimRight(b.String(), ",.;:!?")
	if out == "" {
		// a single word longer than the limit is cut hard
		out = string([]rune(s)[:budget])
	}
	return out + suffix
}
