package utils

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"", time.Time{}},
		{"2026-01-10 12:00", time.Date(2026, 1, 10, 12, 0, 0, 0, time.Local)},
		{"2026-01-10 12:00:10", time.Date(2026, 1, 10, 12, 0, 10, 0, time.Local)},
		{"2026-01-10T12:00:10", time.Date(2026, 1, 10, 12, 0, 10, 0, time.Local)},
		{"2026-01-10T12:00:00Z", time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)},
		{"2026-05-20", time.Date(2026, 5, 20, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		actual, err := ParseTimestamp(tt.input)
		assert.NoError(t, err)
		assert.True(t, tt.expected.Equal(actual), "input %q: got %v", tt.input, actual)
	}

	t.Run("Invalid input", func(t *testing.T) {
		_, err := ParseTimestamp("tomorrow")
		assert.Error(t, err)
	})
}

func TestLimitToClosestWord(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected string
	}{
		{"short text", 50, "short text"},
		{"  spaced \n\t out  ", 50, "spaced out"},
		{"the quick brown fox jumps", 15, "the quick..."},
		{"the quick brown fox jumps", 18, "the quick brown..."},
		{"one, two, three", 12, "one, two..."},
		{"supercalifragilistic", 5, "su..."},
		{"ünïcödé wörds here", 16, "ünïcödé wörds..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		actual := LimitToClosestWord(tt.input, tt.limit, "...")
		assert.Equal(t, tt.expected, actual, tt.input)
		assert.LessOrEqual(t, utf8.RuneCountInString(actual), tt.limit, tt.input)
	}
}
