// Package textutil holds small text helpers shared by the SEO assembler and
// the CLI: whitespace compaction with truncation, title templates and
// name initials.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultEllipsis is appended to truncated text.
const DefaultEllipsis = "…"

type compactOptions struct {
	maxLength int
	ellipsis  string
}

// CompactOption configures Compact.
type CompactOption func(*compactOptions)

// WithMaxLength limits the result to n runes, ellipsis included.
// Values <= 0 disable truncation.
func WithMaxLength(n int) CompactOption {
	return func(o *compactOptions) { o.maxLength = n }
}

// WithEllipsis replaces DefaultEllipsis.
func WithEllipsis(s string) CompactOption {
	return func(o *compactOptions) { o.ellipsis = s }
}

// Compact collapses whitespace runs into single spaces, trims the ends and,
// if the result is longer than the configured maximum, hard-truncates it and
// appends an ellipsis. ok is false when text is empty (nothing to compact);
// whitespace-only text yields "" with ok true.
func Compact(text string, opts ...CompactOption) (result string, ok bool) {
	if text == "" {
		return "", false
	}

	o := compactOptions{ellipsis: DefaultEllipsis}
	for _, opt := range opts {
		opt(&o)
	}

	clean := strings.Join(strings.Fields(text), " ")

	if o.maxLength <= 0 || utf8.RuneCountInString(clean) <= o.maxLength {
		return clean, true
	}

	keep := o.maxLength - utf8.RuneCountInString(o.ellipsis)
	if keep < 0 {
		keep = 0
	}
	runes := []rune(clean)
	head := strings.TrimRightFunc(string(runes[:keep]), unicode.IsSpace)
	return head + o.ellipsis, true
}
