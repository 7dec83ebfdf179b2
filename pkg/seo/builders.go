package seo

import "reflect"

// Page builds tags for a basic page. Fields set in overrides win over title
// and description.
func (a *Assembler) Page(title, description string, overrides *Params) Tags {
	p := Params{Title: title, Description: description}
	if overrides != nil {
		p = MergeParams(p, *overrides)
	}
	return a.Generate(p)
}

// ArticleParams describes a blog post or article.
type ArticleParams struct {
	Title         string
	Description   string
	Author        string
	PublishedTime any
	ModifiedTime  any
	Image         *Image
	Tags          []string
	Section       string
	Canonical     string
}

// Article builds tags for an article: og:type is forced to "article" and the
// single image becomes the image list.
func (a *Assembler) Article(ap ArticleParams) Tags {
	p := Params{
		Title:         ap.Title,
		Description:   ap.Description,
		Author:        ap.Author,
		PublishedTime: ap.PublishedTime,
		ModifiedTime:  ap.ModifiedTime,
		Tags:          ap.Tags,
		Section:       ap.Section,
		Canonical:     ap.Canonical,
		Type:          TypeArticle,
	}
	if ap.Image != nil {
		p.Images = []Image{*ap.Image}
	}
	return a.Generate(p)
}

// ProfileParams describes a person or account page.
type ProfileParams struct {
	Title       string
	Description string
	Username    string
	Image       *Image
	Canonical   string
}

// Profile builds tags for a profile page: og:type "profile", a summary
// Twitter card and the username as twitter:creator.
func (a *Assembler) Profile(pp ProfileParams) Tags {
	p := Params{
		Title:       pp.Title,
		Description: pp.Description,
		Canonical:   pp.Canonical,
		Type:        TypeProfile,
		Twitter: &Twitter{
			Card:    CardSummary,
			Creator: pp.Username,
		},
	}
	if pp.Image != nil {
		p.Images = []Image{*pp.Image}
	}
	return a.Generate(p)
}

// Page is Assembler.Page on the process-wide configuration.
func Page(title, description string, overrides *Params) Tags {
	return NewAssembler(nil).Page(title, description, overrides)
}

// Article is Assembler.Article on the process-wide configuration.
func Article(ap ArticleParams) Tags {
	return NewAssembler(nil).Article(ap)
}

// Profile is Assembler.Profile on the process-wide configuration.
func Profile(pp ProfileParams) Tags {
	return NewAssembler(nil).Profile(pp)
}

// MergeParams merges params left to right. Non-zero fields of later values
// overwrite earlier ones, except Images, Tags and list-valued Keywords,
// which are concatenated. String-valued Keywords overwrite.
//
// Zero values (false, "", nil) never overwrite, so a later layer cannot
// switch a flag back off.
func MergeParams(params ...Params) Params {
	var merged Params
	dst := reflect.ValueOf(&merged).Elem()

	for _, p := range params {
		src := reflect.ValueOf(p)
		for i := 0; i < src.NumField(); i++ {
			switch dst.Type().Field(i).Name {
			case "Images", "Tags", "Keywords":
				continue
			}
			if f := src.Field(i); !f.IsZero() {
				dst.Field(i).Set(f)
			}
		}

		if len(p.Images) > 0 {
			merged.Images = append(append([]Image(nil), merged.Images...), p.Images...)
		}
		if len(p.Tags) > 0 {
			merged.Tags = append(append([]string(nil), merged.Tags...), p.Tags...)
		}
		merged.Keywords = mergeKeywords(merged.Keywords, p.Keywords)
	}

	return merged
}

func mergeKeywords(existing, next Keywords) Keywords {
	if next.IsList() {
		var list []string
		switch {
		case existing.IsList():
			list = append(list, existing.List...)
		case existing.Text != "":
			list = append(list, existing.Text)
		}
		return Keywords{List: append(list, next.List...)}
	}
	if next.Text != "" {
		return next
	}
	return existing
}
