// Package seo assembles the metadata tags of a page (title, description,
// robots, Open Graph, Twitter card, verification) from per-page parameters
// layered over site-wide configuration.
package seo

import "github.com/edgecomet/webkit/pkg/textutil"

// Built-in defaults used when neither the page nor the config says otherwise.
const (
	DefaultSiteName             = "My Site"
	DefaultLocale               = "en_US"
	DefaultRobots               = "index,follow"
	DefaultDescriptionMaxLength = 160
)

// Verification holds search engine site-verification tokens.
type Verification struct {
	Google string `yaml:"google,omitempty" json:"google,omitempty"`
	Yandex string `yaml:"yandex,omitempty" json:"yandex,omitempty"`
	Bing   string `yaml:"bing,omitempty" json:"bing,omitempty"`
}

// Config is the site-wide SEO configuration.
type Config struct {
	SiteName             string            `yaml:"site_name" json:"site_name"`
	SiteURL              string            `yaml:"site_url,omitempty" json:"site_url,omitempty"`
	Locale               string            `yaml:"locale,omitempty" json:"locale,omitempty"`
	TwitterSite          string            `yaml:"twitter_site,omitempty" json:"twitter_site,omitempty"`
	TwitterCreator       string            `yaml:"twitter_creator,omitempty" json:"twitter_creator,omitempty"`
	TitleTemplate        textutil.Template `yaml:"title_template,omitempty" json:"title_template,omitempty"`
	DefaultRobots        string            `yaml:"default_robots,omitempty" json:"default_robots,omitempty"`
	DefaultImage         *Image            `yaml:"default_image,omitempty" json:"default_image,omitempty"`
	DescriptionMaxLength int               `yaml:"description_max_length,omitempty" json:"description_max_length,omitempty"`
	ThemeColor           string            `yaml:"theme_color,omitempty" json:"theme_color,omitempty"`
	Verification         *Verification     `yaml:"verification,omitempty" json:"verification,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		SiteName:             DefaultSiteName,
		Locale:               DefaultLocale,
		DefaultRobots:        DefaultRobots,
		DescriptionMaxLength: DefaultDescriptionMaxLength,
	}
}

// Clone returns a deep copy so callers cannot mutate shared state through it.
func (c Config) Clone() Config {
	if c.DefaultImage != nil {
		img := *c.DefaultImage
		c.DefaultImage = &img
	}
	if c.Verification != nil {
		v := *c.Verification
		c.Verification = &v
	}
	return c
}

// Partial is a set of Config overrides. Only non-nil fields are applied.
type Partial struct {
	SiteName             *string
	SiteURL              *string
	Locale               *string
	TwitterSite          *string
	TwitterCreator       *string
	TitleTemplate        *textutil.Template
	DefaultRobots        *string
	DefaultImage         *Image
	DescriptionMaxLength *int
	ThemeColor           *string
	Verification         *Verification
}

// Merge returns c with every field set in p overwritten (shallow merge).
func (c Config) Merge(p Partial) Config {
	setString(&c.SiteName, p.SiteName)
	setString(&c.SiteURL, p.SiteURL)
	setString(&c.Locale, p.Locale)
	setString(&c.TwitterSite, p.TwitterSite)
	setString(&c.TwitterCreator, p.TwitterCreator)
	setString(&c.DefaultRobots, p.DefaultRobots)
	setString(&c.ThemeColor, p.ThemeColor)
	if p.TitleTemplate != nil {
		c.TitleTemplate = *p.TitleTemplate
	}
	if p.DefaultImage != nil {
		img := *p.DefaultImage
		c.DefaultImage = &img
	}
	if p.DescriptionMaxLength != nil {
		c.DescriptionMaxLength = *p.DescriptionMaxLength
	}
	if p.Verification != nil {
		v := *p.Verification
		c.Verification = &v
	}
	return c
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// String returns a pointer to s, for building a Partial.
func String(s string) *string {
	return &s
}

// Int returns a pointer to n, for building a Partial.
func Int(n int) *int {
	return &n
}
