package util

import (
	"strconv"
	"strings"
)

// SafeInt parses s as a base-10 integer after stripping every character that
// is not an ASCII digit. Empty input or a string with no digits yields 0.
// It never fails, whatever the input.
func SafeInt(s string) int {
	if s == "" {
		return 0
	}

	var builder strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}
	if builder.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(builder.String())
	if err != nil {
		return 0
	}
	return n
}

// GroupThousands formats n with comma thousands separators (12345 -> "12,345")
func GroupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var builder strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		builder.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if builder.Len() > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + builder.String()
	}
	return builder.String()
}

// TruncateString truncates a string to maxRunes characters (rune-based, not byte-based)
// If truncated, appends "..." to the result
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
