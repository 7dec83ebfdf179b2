package seo

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Inspect parses an HTML document (or a bare head fragment) and returns its
// title, meta and canonical link elements as tags in document order. Text is
// trimmed; elements with no recognized key are skipped.
func Inspect(r io.Reader) (Tags, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var tags Tags
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if t, ok := nodeTag(n); ok {
				tags = append(tags, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return tags, nil
}

func nodeTag(n *html.Node) (Tag, bool) {
	switch strings.ToLower(n.Data) {
	case "title":
		return Tag{Kind: KindTitle, Content: strings.TrimSpace(getTextContent(n))}, true
	case "link":
		if strings.ToLower(getAttr(n, "rel")) == "canonical" {
			return Tag{Kind: KindName, Key: "canonical", Content: strings.TrimSpace(getAttr(n, "href"))}, true
		}
	case "meta":
		content := getAttr(n, "content")
		if charset := getAttr(n, "charset"); charset != "" {
			return Tag{Kind: KindCharset, Content: charset}, true
		}
		if name := getAttr(n, "name"); name != "" {
			return Tag{Kind: KindName, Key: name, Content: content}, true
		}
		if property := getAttr(n, "property"); property != "" {
			return Tag{Kind: KindProperty, Key: property, Content: content}, true
		}
		if equiv := getAttr(n, "http-equiv"); equiv != "" {
			return Tag{Kind: KindHTTPEquiv, Key: equiv, Content: content}, true
		}
	}
	return Tag{}, false
}

// getAttr returns attribute value for given name (case-insensitive comparison).
// Returns empty string if not found.
func getAttr(node *html.Node, name string) string {
	if node == nil {
		return ""
	}
	name = strings.ToLower(name)
	for _, attr := range node.Attr {
		if strings.ToLower(attr.Key) == name {
			return attr.Val
		}
	}
	return ""
}

// getTextContent recursively extracts all text content from node and descendants.
func getTextContent(node *html.Node) string {
	if node == nil {
		return ""
	}

	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(node)
	return sb.String()
}
