package seo

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes tags as <head> children, one element per line, followed
// by one <script type="application/ld+json"> per JSON-LD object. The empty
// name marker is skipped and canonical is written as <link rel="canonical">.
func RenderHTML(w io.Writer, tags Tags, jsonLD []map[string]any) error {
	for _, t := range tags {
		node := tagNode(t)
		if node == nil {
			continue
		}
		if err := renderLine(w, node); err != nil {
			return err
		}
	}

	for i, obj := range jsonLD {
		data, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to encode json-ld object %d: %w", i, err)
		}
		script := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Script,
			Data:     "script",
			Attr:     []html.Attribute{{Key: "type", Val: "application/ld+json"}},
		}
		script.AppendChild(&html.Node{Type: html.TextNode, Data: string(data)})
		if err := renderLine(w, script); err != nil {
			return err
		}
	}
	return nil
}

func renderLine(w io.Writer, node *html.Node) error {
	if err := html.Render(w, node); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// tagNode converts a tag to its element, or nil for the marker tag.
func tagNode(t Tag) *html.Node {
	switch t.Kind {
	case KindTitle:
		n := &html.Node{Type: html.ElementNode, DataAtom: atom.Title, Data: "title"}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: t.Content})
		return n
	case KindCharset:
		return metaNode(html.Attribute{Key: "charset", Val: t.Content})
	case KindName:
		if t.Key == "" {
			return nil
		}
		if t.Key == "canonical" {
			return &html.Node{
				Type:     html.ElementNode,
				DataAtom: atom.Link,
				Data:     "link",
				Attr: []html.Attribute{
					{Key: "rel", Val: "canonical"},
					{Key: "href", Val: t.Content},
				},
			}
		}
		return metaNode(
			html.Attribute{Key: "name", Val: t.Key},
			html.Attribute{Key: "content", Val: t.Content})
	case KindProperty:
		return metaNode(
			html.Attribute{Key: "property", Val: t.Key},
			html.Attribute{Key: "content", Val: t.Content})
	case KindHTTPEquiv:
		return metaNode(
			html.Attribute{Key: "http-equiv", Val: t.Key},
			html.Attribute{Key: "content", Val: t.Content})
	default:
		return nil
	}
}

func metaNode(attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: atom.Meta, Data: "meta", Attr: attrs}
}
