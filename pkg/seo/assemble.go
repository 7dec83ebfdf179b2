package seo

import (
	"strconv"
	"strings"

	"github.com/edgecomet/webkit/pkg/textutil"
	"github.com/edgecomet/webkit/pkg/timefmt"
)

// Assembler turns Params into Tags using the configuration held by a Store.
type Assembler struct {
	store *Store
}

// NewAssembler returns an Assembler reading configuration from store.
// A nil store means the process-wide default store.
func NewAssembler(store *Store) *Assembler {
	if store == nil {
		store = defaultStore
	}
	return &Assembler{store: store}
}

// Store returns the configuration store backing a.
func (a *Assembler) Store() *Store {
	return a.store
}

// Generate builds the tags for one page using the process-wide configuration.
func Generate(p Params) Tags {
	return NewAssembler(nil).Generate(p)
}

// tagBuilder appends tags, dropping those whose content is blank.
type tagBuilder struct {
	tags Tags
}

func (b *tagBuilder) add(t Tag) {
	b.tags = append(b.tags, t)
}

func (b *tagBuilder) addIfValue(kind KeyKind, key, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	b.add(Tag{Kind: kind, Key: key, Content: content})
}

func (b *tagBuilder) addIntIfValue(kind KeyKind, key string, n int) {
	if n == 0 {
		return
	}
	b.addIfValue(kind, key, strconv.Itoa(n))
}

// Generate builds the tags for one page. The output order is fixed: charset,
// marker, viewport, title, basic meta, canonical, verification, Open Graph,
// images, article, Twitter.
func (a *Assembler) Generate(p Params) Tags {
	cfg := a.store.snapshot()

	siteName := firstNonEmpty(p.SiteName, cfg.SiteName)
	locale := firstNonEmpty(p.Locale, cfg.Locale, DefaultLocale)
	siteURL := firstNonEmpty(p.SiteURL, cfg.SiteURL)

	maxLength := p.DescriptionMaxLength
	if maxLength == 0 {
		maxLength = cfg.DescriptionMaxLength
	}
	if maxLength == 0 {
		maxLength = DefaultDescriptionMaxLength
	}

	title := makeTitle(p, siteName, cfg.TitleTemplate)
	description, _ := textutil.Compact(p.Description, textutil.WithMaxLength(maxLength))
	keywords := p.Keywords.String()
	robots := resolveRobots(p, cfg.DefaultRobots)
	images := collectImages(p.Images, cfg.DefaultImage)

	ogType := p.Type
	if ogType == "" {
		ogType = TypeWebsite
	}

	var twitter Twitter
	if p.Twitter != nil {
		twitter = *p.Twitter
	}
	card := twitter.Card
	if card == "" {
		if len(images) > 0 {
			card = CardSummaryLargeImage
		} else {
			card = CardSummary
		}
	}
	twitterSite := firstNonEmpty(twitter.Site, cfg.TwitterSite)
	twitterCreator := firstNonEmpty(twitter.Creator, cfg.TwitterCreator)

	published, _ := timefmt.ToISO(p.PublishedTime)
	modified, _ := timefmt.ToISO(p.ModifiedTime)

	b := &tagBuilder{}

	// Character set and viewport
	if p.CharSet != "" {
		b.add(Tag{Kind: KindCharset, Content: p.CharSet})
	}
	b.add(Tag{Kind: KindName})
	b.addIfValue(KindName, "viewport", p.Viewport.Content())

	// Basic meta
	b.add(Tag{Kind: KindTitle, Content: title})
	b.addIfValue(KindName, "description", description)
	b.addIfValue(KindName, "keywords", keywords)
	b.addIfValue(KindName, "robots", robots)
	b.addIfValue(KindName, "author", p.Author)
	b.addIfValue(KindName, "theme-color", firstNonEmpty(p.ThemeColor, cfg.ThemeColor))

	if p.Canonical != "" {
		b.addIfValue(KindName, "canonical", resolveURL(p.Canonical, siteURL))
	}

	// Verification
	verification := p.Verification
	if verification == nil {
		verification = cfg.Verification
	}
	if verification != nil {
		b.addIfValue(KindName, "google-site-verification", verification.Google)
		b.addIfValue(KindName, "yandex-verification", verification.Yandex)
		b.addIfValue(KindName, "msvalidate.01", verification.Bing)
	}

	// Open Graph
	b.addIfValue(KindProperty, "og:type", string(ogType))
	b.addIfValue(KindProperty, "og:title", title)
	b.addIfValue(KindProperty, "og:description", description)
	b.addIfValue(KindProperty, "og:site_name", siteName)
	b.addIfValue(KindProperty, "og:locale", locale)

	if p.Canonical != "" && siteURL != "" {
		b.addIfValue(KindProperty, "og:url", resolveURL(p.Canonical, siteURL))
	}

	for _, img := range images {
		b.addIfValue(KindProperty, "og:image", img.URL)
		b.addIfValue(KindProperty, "og:image:secure_url", img.SecureURL)
		b.addIfValue(KindProperty, "og:image:alt", img.Alt)
		b.addIfValue(KindProperty, "og:image:type", img.Type)
		b.addIntIfValue(KindProperty, "og:image:width", img.Width)
		b.addIntIfValue(KindProperty, "og:image:height", img.Height)
	}

	if ogType == TypeArticle {
		b.addIfValue(KindProperty, "article:published_time", published)
		b.addIfValue(KindProperty, "article:modified_time", modified)
		b.addIfValue(KindProperty, "article:author", p.Author)
		b.addIfValue(KindProperty, "article:section", p.Section)
		for _, tag := range p.Tags {
			b.addIfValue(KindProperty, "article:tag", tag)
		}
	}

	// Twitter card
	b.addIfValue(KindName, "twitter:card", string(card))
	b.addIfValue(KindName, "twitter:title", title)
	b.addIfValue(KindName, "twitter:description", description)
	b.addIfValue(KindName, "twitter:site", twitterSite)
	b.addIfValue(KindName, "twitter:creator", twitterCreator)

	if len(images) > 0 {
		b.addIfValue(KindName, "twitter:image", images[0].URL)
		b.addIfValue(KindName, "twitter:image:alt", images[0].Alt)
	}

	return b.tags
}

func makeTitle(p Params, siteName string, configTemplate textutil.Template) string {
	template := p.TitleTemplate
	if template.IsZero() {
		template = configTemplate
	}
	return textutil.MakeTitle(p.Title, siteName, textutil.TemplateParams{
		DisableSuffix: p.DisableTitleSuffix,
		Template:      template,
	})
}

// resolveRobots prefers an explicit policy, then the noindex/nofollow flags,
// then the configured default.
func resolveRobots(p Params, configured string) string {
	if p.Robots != "" {
		return p.Robots
	}
	if p.NoIndex || p.NoFollow {
		index, follow := "index", "follow"
		if p.NoIndex {
			index = "noindex"
		}
		if p.NoFollow {
			follow = "nofollow"
		}
		return index + "," + follow
	}
	return firstNonEmpty(configured, DefaultRobots)
}

// collectImages appends the default image to the page images and drops
// repeated URLs, keeping the first occurrence.
func collectImages(pageImages []Image, defaultImage *Image) []Image {
	all := make([]Image, 0, len(pageImages)+1)
	all = append(all, pageImages...)
	if defaultImage != nil && defaultImage.URL != "" {
		all = append(all, *defaultImage)
	}

	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, img := range all {
		if _, dup := seen[img.URL]; dup {
			continue
		}
		seen[img.URL] = struct{}{}
		out = append(out, img)
	}
	return out
}

// resolveURL joins a relative path onto siteURL with exactly one slash.
// Absolute URLs, and any path when siteURL is empty, are returned unchanged.
func resolveURL(path, siteURL string) string {
	if strings.HasPrefix(path, "http") || siteURL == "" {
		return path
	}
	base := strings.TrimSuffix(siteURL, "/")
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
