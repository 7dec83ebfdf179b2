package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []CompactOption
		expected string
		ok       bool
	}{
		{
			name:  "empty string is absent",
			input: "",
		},
		{
			name:     "collapses whitespace",
			input:    "  Hello   world   ",
			expected: "Hello world",
			ok:       true,
		},
		{
			name:     "shorter than max",
			input:    "Hello",
			opts:     []CompactOption{WithMaxLength(10)},
			expected: "Hello",
			ok:       true,
		},
		{
			name:     "non-positive max disables truncation",
			input:    "Hello world",
			opts:     []CompactOption{WithMaxLength(0)},
			expected: "Hello world",
			ok:       true,
		},
		{
			name:     "default ellipsis",
			input:    "Hello amazing world",
			opts:     []CompactOption{WithMaxLength(10)},
			expected: "Hello ama…",
			ok:       true,
		},
		{
			name:     "custom ellipsis",
			input:    "Hello amazing world",
			opts:     []CompactOption{WithMaxLength(10), WithEllipsis("...")},
			expected: "Hello a...",
			ok:       true,
		},
		{
			name:     "trailing spaces trimmed before ellipsis",
			input:    "Hello    world  ",
			opts:     []CompactOption{WithMaxLength(10)},
			expected: "Hello wor…",
			ok:       true,
		},
		{
			name:     "cut lands on a space",
			input:    "Hello world again",
			opts:     []CompactOption{WithMaxLength(7)},
			expected: "Hello…",
			ok:       true,
		},
		{
			name:     "exactly max length",
			input:    "HelloWorld",
			opts:     []CompactOption{WithMaxLength(10)},
			expected: "HelloWorld",
			ok:       true,
		},
		{
			name:     "only spaces",
			input:    "     ",
			expected: "",
			ok:       true,
		},
		{
			name:     "counts runes",
			input:    "日本語のテキストです",
			opts:     []CompactOption{WithMaxLength(5)},
			expected: "日本語の…",
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compact(tt.input, tt.opts...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMakeTitle(t *testing.T) {
	const site = "Linkiri"

	tests := []struct {
		name     string
		base     string
		params   TemplateParams
		expected string
	}{
		{
			name:     "literal template",
			base:     "Jobs in Tech",
			params:   TemplateParams{Template: Literal("%s - Powered by Linkiri")},
			expected: "Jobs in Tech - Powered by Linkiri",
		},
		{
			name: "custom template",
			base: "Developers",
			params: TemplateParams{Template: Custom(func(value, site string) string {
				return strings.ToUpper(value) + " | " + site
			})},
			expected: "DEVELOPERS | Linkiri",
		},
		{
			name:     "no template appends site",
			base:     "Careers",
			expected: "Careers | Linkiri",
		},
		{
			name:     "site already present",
			base:     "About linkiri",
			expected: "About linkiri",
		},
		{
			name:     "literal without placeholder falls back to suffix",
			base:     "Careers",
			params:   TemplateParams{Template: Literal("static")},
			expected: "Careers | Linkiri",
		},
		{
			name:     "only first placeholder replaced",
			base:     "A",
			params:   TemplateParams{Template: Literal("%s and %s")},
			expected: "A and %s",
		},
		{
			name:     "suffix disabled",
			base:     "Linkiri OG Preview",
			params:   TemplateParams{DisableSuffix: true, Template: Literal("%s!")},
			expected: "Linkiri OG Preview",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MakeTitle(tt.base, site, tt.params))
		})
	}
}

func TestTemplate_ZeroAndText(t *testing.T) {
	var tpl Template
	assert.True(t, tpl.IsZero())

	assert.NoError(t, tpl.UnmarshalText([]byte("%s | Blog")))
	assert.False(t, tpl.IsZero())
	assert.Equal(t, "%s | Blog", tpl.String())

	out, err := tpl.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "%s | Blog", string(out))

	assert.False(t, Custom(func(v, _ string) string { return v }).IsZero())
}

func TestInitials(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "?"},
		{"   ", "?"},
		{"John", "J"},
		{"mary", "M"},
		{"John Doe", "JD"},
		{"John Doe Smith", "JD"},
		{"  Mary   Jane  ", "MJ"},
		{"Jean-Pierre Dupont", "JD"},
		{"José García", "JG"},
		{"François Dupont", "FD"},
		{"Émile Zola", "EZ"},
		{"O'Connor", "O"},
		{"jOHN dOE", "JD"},
		{"123 Test", "1T"},
		{"X", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Initials(tt.input, DefaultInitialsFallback))
		})
	}

	assert.Equal(t, "--", Initials("", "--"))
}
