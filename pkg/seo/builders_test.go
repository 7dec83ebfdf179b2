package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	a := newTestAssembler(Partial{SiteURL: String("https://example.com")})

	tags := a.Page("About", "Who we are", nil)
	assert.Equal(t, "About | My Site", tags.Title())
	assert.Equal(t, "Who we are", mustGet(t, tags, KindName, "description"))
	assert.Equal(t, "website", mustGet(t, tags, KindProperty, "og:type"))
}

func TestPage_Overrides(t *testing.T) {
	a := newTestAssembler(Partial{SiteURL: String("https://example.com")})

	tags := a.Page("About", "Who we are", &Params{
		Description: "Overridden",
		Canonical:   "/about",
		NoIndex:     true,
	})
	assert.Equal(t, "About | My Site", tags.Title())
	assert.Equal(t, "Overridden", mustGet(t, tags, KindName, "description"))
	assert.Equal(t, "https://example.com/about", mustGet(t, tags, KindName, "canonical"))
	assert.Equal(t, "noindex,follow", mustGet(t, tags, KindName, "robots"))
}

func TestArticle(t *testing.T) {
	a := newTestAssembler(Partial{})

	tags := a.Article(ArticleParams{
		Title:         "Launch",
		Description:   "We shipped",
		Author:        "Ann",
		PublishedTime: "2024-03-10",
		Image:         &Image{URL: "https://x/cover.png", Alt: "Cover"},
		Tags:          []string{"news", "release"},
		Section:       "Company",
	})

	assert.Equal(t, "article", mustGet(t, tags, KindProperty, "og:type"))
	assert.Equal(t, "2024-03-10T00:00:00.000Z", mustGet(t, tags, KindProperty, "article:published_time"))
	assert.Equal(t, "Ann", mustGet(t, tags, KindName, "author"))
	assert.Equal(t, "Ann", mustGet(t, tags, KindProperty, "article:author"))
	assert.Equal(t, "Company", mustGet(t, tags, KindProperty, "article:section"))
	assert.Equal(t, []string{"news", "release"}, tags.All(KindProperty, "article:tag"))
	assert.Equal(t, []string{"https://x/cover.png"}, tags.All(KindProperty, "og:image"))
	assert.Equal(t, "Cover", mustGet(t, tags, KindName, "twitter:image:alt"))
	assert.Equal(t, "summary_large_image", mustGet(t, tags, KindName, "twitter:card"))
}

func TestArticle_WithoutImage(t *testing.T) {
	tags := newTestAssembler(Partial{}).Article(ArticleParams{Title: "Launch"})
	assert.Empty(t, tags.All(KindProperty, "og:image"))
	assert.Equal(t, "summary", mustGet(t, tags, KindName, "twitter:card"))
}

func TestProfile(t *testing.T) {
	a := newTestAssembler(Partial{TwitterCreator: String("@config")})

	tags := a.Profile(ProfileParams{
		Title:    "Ann Lee",
		Username: "@annlee",
		Image:    &Image{URL: "https://x/ann.png"},
	})

	assert.Equal(t, "profile", mustGet(t, tags, KindProperty, "og:type"))
	assert.Equal(t, "summary", mustGet(t, tags, KindName, "twitter:card"), "card stays summary even with an image")
	assert.Equal(t, "@annlee", mustGet(t, tags, KindName, "twitter:creator"))
	assert.Equal(t, "https://x/ann.png", mustGet(t, tags, KindName, "twitter:image"))
}

func TestProfile_EmptyUsernameFallsBackToConfig(t *testing.T) {
	tags := newTestAssembler(Partial{TwitterCreator: String("@config")}).Profile(ProfileParams{Title: "Ann"})
	assert.Equal(t, "@config", mustGet(t, tags, KindName, "twitter:creator"))
}

func TestMergeParams(t *testing.T) {
	t.Run("later non-zero fields win", func(t *testing.T) {
		merged := MergeParams(
			Params{Title: "A", Description: "first", Author: "Ann"},
			Params{Title: "B", Author: ""},
		)
		assert.Equal(t, "B", merged.Title)
		assert.Equal(t, "first", merged.Description)
		assert.Equal(t, "Ann", merged.Author)
	})

	t.Run("tags concatenate", func(t *testing.T) {
		merged := MergeParams(Params{Tags: []string{"a"}}, Params{Tags: []string{"b"}})
		assert.Equal(t, []string{"a", "b"}, merged.Tags)
	})

	t.Run("images concatenate", func(t *testing.T) {
		merged := MergeParams(
			Params{Images: []Image{ImageURL("1")}},
			Params{},
			Params{Images: []Image{ImageURL("2"), ImageURL("3")}},
		)
		assert.Equal(t, []Image{ImageURL("1"), ImageURL("2"), ImageURL("3")}, merged.Images)
	})

	t.Run("keyword lists concatenate", func(t *testing.T) {
		merged := MergeParams(
			Params{Keywords: KeywordList("go")},
			Params{Keywords: KeywordList("seo", "web")},
		)
		assert.Equal(t, KeywordList("go", "seo", "web"), merged.Keywords)
	})

	t.Run("keyword string overwrites", func(t *testing.T) {
		merged := MergeParams(
			Params{Keywords: KeywordList("go")},
			Params{Keywords: KeywordText("plain")},
		)
		assert.Equal(t, KeywordText("plain"), merged.Keywords)
	})

	t.Run("keyword string then list", func(t *testing.T) {
		merged := MergeParams(
			Params{Keywords: KeywordText("plain")},
			Params{Keywords: KeywordList("go")},
		)
		assert.Equal(t, KeywordList("plain", "go"), merged.Keywords)
	})

	t.Run("pointer fields overwrite", func(t *testing.T) {
		merged := MergeParams(
			Params{Twitter: &Twitter{Site: "@a"}},
			Params{Twitter: &Twitter{Creator: "@b"}},
		)
		require.NotNil(t, merged.Twitter)
		assert.Equal(t, Twitter{Creator: "@b"}, *merged.Twitter)
	})

	t.Run("flags cannot be switched off", func(t *testing.T) {
		merged := MergeParams(Params{NoIndex: true}, Params{NoIndex: false})
		assert.True(t, merged.NoIndex)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		first := Params{Tags: make([]string, 1, 4)}
		first.Tags[0] = "a"
		_ = MergeParams(first, Params{Tags: []string{"b"}})
		_ = MergeParams(first, Params{Tags: []string{"c"}})
		assert.Equal(t, []string{"a"}, first.Tags)
		assert.Equal(t, "", first.Tags[:2][1])
	})

	t.Run("no params", func(t *testing.T) {
		assert.Equal(t, Params{}, MergeParams())
	})
}
