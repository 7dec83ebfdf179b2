// Package timefmt formats second counts as clock or prose durations, parses
// clock strings back to seconds and normalizes date values to ISO 8601.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidSeconds = errors.New("seconds must be a finite, non-negative number")
	ErrInvalidTime    = errors.New("invalid time string")
)

// Style selects the output shape of Format.
type Style int

const (
	// Digital renders "5:30" or "1:05:30".
	Digital Style = iota
	// Long renders "1 hour 5 minutes 30 seconds".
	Long
	// Short renders "1h 5m 30s".
	Short
	// Compact renders digital form with hours always present ("0:05:30").
	Compact
)

// ParseStyle maps "digital", "long", "short" and "compact" to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "digital":
		return Digital, nil
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	case "compact":
		return Compact, nil
	default:
		return Digital, fmt.Errorf("unknown style %q", s)
	}
}

// Rounding selects how fractional seconds are dropped.
type Rounding int

const (
	Floor Rounding = iota
	Ceil
	Round
)

// ParseRounding maps "floor", "ceil" and "round" to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "floor":
		return Floor, nil
	case "ceil":
		return Ceil, nil
	case "round":
		return Round, nil
	default:
		return Floor, fmt.Errorf("unknown rounding %q", s)
	}
}

// Options controls Format. Use DefaultOptions as the starting point.
type Options struct {
	Style           Style
	AlwaysShowHours bool
	Rounding        Rounding
	PadMinutes      bool
	Separator       string
}

// DefaultOptions returns digital style, floor rounding, padded minutes and ":".
func DefaultOptions() Options {
	return Options{
		Style:      Digital,
		Rounding:   Floor,
		PadMinutes: true,
		Separator:  ":",
	}
}

// Format renders seconds according to opts.
//
//	Format(65, DefaultOptions())     // "01:05"
//	Format(3665, DefaultOptions())   // "1:01:05"
func Format(seconds float64, opts Options) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidSeconds, seconds)
	}

	var total int64
	switch opts.Rounding {
	case Ceil:
		total = int64(math.Ceil(seconds))
	case Round:
		total = int64(math.Floor(seconds + 0.5))
	default:
		total = int64(math.Floor(seconds))
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	showHours := hours > 0 || opts.AlwaysShowHours

	switch opts.Style {
	case Long:
		return formatWords(hours, minutes, secs, showHours, longUnits), nil
	case Short:
		return formatWords(hours, minutes, secs, showHours, shortUnits), nil
	case Compact:
		return formatDigital(hours, minutes, secs, true, opts), nil
	default:
		return formatDigital(hours, minutes, secs, showHours, opts), nil
	}
}

func formatDigital(hours, minutes, secs int64, showHours bool, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = ":"
	}

	parts := make([]string, 0, 3)
	if showHours {
		parts = append(parts, strconv.FormatInt(hours, 10), pad2(minutes))
	} else if opts.PadMinutes {
		parts = append(parts, pad2(minutes))
	} else {
		parts = append(parts, strconv.FormatInt(minutes, 10))
	}
	parts = append(parts, pad2(secs))
	return strings.Join(parts, sep)
}

func pad2(n int64) string {
	return fmt.Sprintf("%02d", n)
}

type unitNames struct {
	hour, minute, second string
	suffix               func(name string, n int64) string
}

var longUnits = unitNames{
	hour: "hour", minute: "minute", second: "second",
	suffix: func(name string, n int64) string {
		return fmt.Sprintf("%d %s", n, pluralize(name, n))
	},
}

var shortUnits = unitNames{
	hour: "h", minute: "m", second: "s",
	suffix: func(name string, n int64) string {
		return fmt.Sprintf("%d%s", n, name)
	},
}

// formatWords omits zero components but always shows seconds when nothing
// else was written.
func formatWords(hours, minutes, secs int64, showHours bool, u unitNames) string {
	var parts []string
	if showHours && hours > 0 {
		parts = append(parts, u.suffix(u.hour, hours))
	}
	if minutes > 0 {
		parts = append(parts, u.suffix(u.minute, minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, u.suffix(u.second, secs))
	}
	return strings.Join(parts, " ")
}

func pluralize(word string, n int64) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
