package seo

import (
	"strings"

	"github.com/edgecomet/webkit/pkg/textutil"
)

// OGType is an Open Graph object type.
type OGType string

const (
	TypeWebsite      OGType = "website"
	TypeArticle      OGType = "article"
	TypeBook         OGType = "book"
	TypeProfile      OGType = "profile"
	TypeMusicSong    OGType = "music.song"
	TypeMusicAlbum   OGType = "music.album"
	TypeVideoMovie   OGType = "video.movie"
	TypeVideoEpisode OGType = "video.episode"
)

// TwitterCard is a Twitter card type.
type TwitterCard string

const (
	CardSummary           TwitterCard = "summary"
	CardSummaryLargeImage TwitterCard = "summary_large_image"
	CardApp               TwitterCard = "app"
	CardPlayer            TwitterCard = "player"
)

// Image is an Open Graph image. In YAML it may be written as a bare URL.
type Image struct {
	URL       string `yaml:"url" json:"url"`
	Alt       string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Width     int    `yaml:"width,omitempty" json:"width,omitempty"`
	Height    int    `yaml:"height,omitempty" json:"height,omitempty"`
	Type      string `yaml:"type,omitempty" json:"type,omitempty"` // MIME type
	SecureURL string `yaml:"secure_url,omitempty" json:"secure_url,omitempty"`
}

// ImageURL returns an Image with only its URL set.
func ImageURL(url string) Image {
	return Image{URL: url}
}

// Twitter overrides the Twitter card fields for one page.
type Twitter struct {
	Site    string      `yaml:"site,omitempty" json:"site,omitempty"`
	Creator string      `yaml:"creator,omitempty" json:"creator,omitempty"`
	Card    TwitterCard `yaml:"card,omitempty" json:"card,omitempty"`
}

// Keywords is either a list (joined with ", ") or a preformatted string.
// List takes precedence when both are set.
type Keywords struct {
	Text string
	List []string
}

// KeywordList returns list-valued keywords.
func KeywordList(words ...string) Keywords {
	return Keywords{List: words}
}

// KeywordText returns string-valued keywords, used verbatim.
func KeywordText(s string) Keywords {
	return Keywords{Text: s}
}

// IsList reports whether k holds a list.
func (k Keywords) IsList() bool {
	return k.List != nil
}

// String renders the keywords meta content.
func (k Keywords) String() string {
	if k.IsList() {
		return strings.Join(k.List, ", ")
	}
	return k.Text
}

// IsZero reports whether no keywords are set.
func (k Keywords) IsZero() bool {
	return k.List == nil && k.Text == ""
}

// ViewportPair is one key=value entry of a viewport meta tag.
type ViewportPair struct {
	Key   string
	Value string
}

// Viewport is either a raw content string or an ordered list of pairs.
type Viewport struct {
	Raw   string
	Pairs []ViewportPair
}

// RawViewport returns a viewport whose content is used verbatim.
func RawViewport(content string) *Viewport {
	return &Viewport{Raw: content}
}

// NewViewport builds a viewport from alternating key, value arguments.
// A trailing key without a value is ignored.
func NewViewport(kv ...string) *Viewport {
	v := &Viewport{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Pairs = append(v.Pairs, ViewportPair{Key: kv[i], Value: kv[i+1]})
	}
	return v
}

// Content renders the viewport as "k=v, k=v", skipping empty values.
func (v *Viewport) Content() string {
	if v == nil {
		return ""
	}
	if v.Raw != "" {
		return v.Raw
	}
	parts := make([]string, 0, len(v.Pairs))
	for _, p := range v.Pairs {
		if p.Value == "" {
			continue
		}
		parts = append(parts, p.Key+"="+p.Value)
	}
	return strings.Join(parts, ", ")
}

// Params describes one page. Title is required; everything else is optional
// and omitted from the output when empty.
type Params struct {
	// Core metadata
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Keywords    Keywords `yaml:"keywords,omitempty"`
	Canonical   string   `yaml:"canonical,omitempty"`

	// Site overrides
	SiteName string `yaml:"site_name,omitempty"`
	SiteURL  string `yaml:"site_url,omitempty"`
	Locale   string `yaml:"locale,omitempty"`
	Type     OGType `yaml:"type,omitempty"`

	// Indexing. Robots wins over the flags; with no flags set the
	// configured default policy applies.
	Robots   string `yaml:"robots,omitempty"`
	NoIndex  bool   `yaml:"noindex,omitempty"`
	NoFollow bool   `yaml:"nofollow,omitempty"`

	Images []Image `yaml:"images,omitempty"`

	// Article fields. Times accept time.Time, *time.Time or a date string.
	PublishedTime any      `yaml:"published_time,omitempty"`
	ModifiedTime  any      `yaml:"modified_time,omitempty"`
	Author        string   `yaml:"author,omitempty"`
	Section       string   `yaml:"section,omitempty"`
	Tags          []string `yaml:"tags,omitempty"`

	Twitter *Twitter `yaml:"twitter,omitempty"`

	Viewport   *Viewport `yaml:"viewport,omitempty"`
	CharSet    string    `yaml:"charset,omitempty"`
	ThemeColor string    `yaml:"theme_color,omitempty"`
	// DescriptionMaxLength of 0 defers to the config; negative disables truncation.
	DescriptionMaxLength int               `yaml:"description_max_length,omitempty"`
	DisableTitleSuffix   bool              `yaml:"disable_title_suffix,omitempty"`
	TitleTemplate        textutil.Template `yaml:"title_template,omitempty"`

	Verification *Verification `yaml:"verification,omitempty"`

	// JSONLD objects are emitted as <script type="application/ld+json"> by RenderHTML.
	JSONLD []map[string]any `yaml:"json_ld,omitempty"`
}
