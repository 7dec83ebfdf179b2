package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts "SS", "MM:SS" or "HH:MM:SS" to seconds. An empty separator
// means ":". Each component is read as a leading integer, so "05s" is 5.
func Parse(s, separator string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidTime)
	}
	if separator == "" {
		separator = ":"
	}

	fields := strings.Split(s, separator)
	parts := make([]int64, 0, len(fields))
	for _, field := range fields {
		n, ok := leadingInt(field)
		if !ok || n < 0 {
			return 0, fmt.Errorf("%w: invalid component %q", ErrInvalidTime, field)
		}
		parts = append(parts, n)
	}

	switch len(parts) {
	case 1:
		return parts[0], nil
	case 2:
		return parts[0]*60 + parts[1], nil
	case 3:
		return parts[0]*3600 + parts[1]*60 + parts[2], nil
	default:
		return 0, fmt.Errorf("%w: expected 1-3 components (SS, MM:SS or HH:MM:SS), got %d",
			ErrInvalidTime, len(parts))
	}
}

// leadingInt parses an optional sign and the digits that follow it,
// ignoring leading whitespace and anything after the digits.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
