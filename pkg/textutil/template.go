package textutil

import "strings"

// Placeholder is replaced by the base value in literal templates.
const Placeholder = "%s"

// Template is either a literal string containing Placeholder or a callback
// receiving (value, site). The zero Template means "no template".
type Template struct {
	literal string
	custom  func(value, site string) string
}

// Literal returns a template that substitutes the first Placeholder.
func Literal(s string) Template {
	return Template{literal: s}
}

// Custom returns a template computed by fn.
func Custom(fn func(value, site string) string) Template {
	return Template{custom: fn}
}

// IsZero reports whether t carries no template.
func (t Template) IsZero() bool {
	return t.literal == "" && t.custom == nil
}

// String returns the literal form, or "" for callback templates.
func (t Template) String() string {
	return t.literal
}

// UnmarshalText lets literal templates be read from config files.
func (t *Template) UnmarshalText(text []byte) error {
	*t = Literal(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.literal), nil
}

// Apply renders value with the template. Without a usable template the site
// name is appended as " | site", unless value already mentions it.
func (t Template) Apply(value, site string) string {
	if t.custom != nil {
		return t.custom(value, site)
	}
	if strings.Contains(t.literal, Placeholder) {
		return strings.Replace(t.literal, Placeholder, value, 1)
	}
	return appendSite(value, site)
}

func appendSite(value, site string) string {
	if strings.Contains(strings.ToLower(value), strings.ToLower(site)) {
		return value
	}
	return value + " | " + site
}

// TemplateParams controls MakeTitle.
type TemplateParams struct {
	DisableSuffix bool
	Template      Template
}

// MakeTitle builds an SEO text from base and site:
//
//	MakeTitle("Careers", "Linkiri", TemplateParams{})                                  // "Careers | Linkiri"
//	MakeTitle("Jobs", "Linkiri", TemplateParams{Template: Literal("%s - Linkiri")})   // "Jobs - Linkiri"
//	MakeTitle("Preview", "Linkiri", TemplateParams{DisableSuffix: true})              // "Preview"
func MakeTitle(base, site string, params TemplateParams) string {
	if params.DisableSuffix {
		return base
	}
	return params.Template.Apply(base, site)
}
