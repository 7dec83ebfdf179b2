package seo

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyKind identifies which attribute names a tag.
type KeyKind int

const (
	KindName KeyKind = iota
	KindProperty
	KindHTTPEquiv
	KindCharset
	KindTitle
)

// String returns the attribute name used in the JSON form of a tag.
func (k KeyKind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindProperty:
		return "property"
	case KindHTTPEquiv:
		return "httpEquiv"
	case KindCharset:
		return "charSet"
	case KindTitle:
		return "title"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// Tag is one metadata record. Charset and title tags carry their value in
// Content and have an empty Key.
type Tag struct {
	Kind    KeyKind
	Key     string
	Content string
}

// MarshalJSON renders {"name": key, "content": ...}, {"property": ...},
// {"charSet": value} or {"title": value}.
func (t Tag) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindCharset, KindTitle:
		return json.Marshal(map[string]string{t.Kind.String(): t.Content})
	}
	if t.Key == "" && t.Content == "" {
		return json.Marshal(map[string]string{t.Kind.String(): ""})
	}
	return json.Marshal(map[string]string{t.Kind.String(): t.Key, "content": t.Content})
}

// Tags is an ordered sequence of tag records.
type Tags []Tag

// Get returns the content of the first tag matching kind and key.
func (ts Tags) Get(kind KeyKind, key string) (string, bool) {
	for _, t := range ts {
		if t.Kind == kind && t.Key == key {
			return t.Content, true
		}
	}
	return "", false
}

// All returns the contents of every tag matching kind and key, in order.
func (ts Tags) All(kind KeyKind, key string) []string {
	var out []string
	for _, t := range ts {
		if t.Kind == kind && t.Key == key {
			out = append(out, t.Content)
		}
	}
	return out
}

// Title returns the content of the title tag.
func (ts Tags) Title() string {
	title, _ := ts.Get(KindTitle, "")
	return title
}

// Fingerprint returns a 16-hex-digit xxhash of the tag sequence, suitable as
// a cache key or ETag for rendered output.
func (ts Tags) Fingerprint() string {
	h := xxhash.New()
	for _, t := range ts {
		_, _ = h.Write([]byte{byte(t.Kind)})
		_, _ = h.WriteString(t.Key)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(t.Content)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
