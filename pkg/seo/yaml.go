package seo

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/edgecomet/webkit/internal/common/yamlutil"
)

// LoadConfig decodes a YAML config document over DefaultConfig, so omitted
// fields keep their built-in values. Unknown fields are rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse seo config: %w", err)
	}
	return cfg, nil
}

// LoadParams decodes page parameters from YAML. Unknown fields are rejected.
func LoadParams(data []byte) (Params, error) {
	var p Params
	if err := yamlutil.UnmarshalStrict(data, &p); err != nil {
		return Params{}, fmt.Errorf("failed to parse seo params: %w", err)
	}
	return p, nil
}

// UnmarshalYAML accepts either a bare URL or a full image mapping.
func (img *Image) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*img = Image{URL: node.Value}
		return nil
	}
	type plain Image
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*img = Image(p)
	return nil
}

// UnmarshalYAML accepts a string (used verbatim) or a list of keywords.
func (k *Keywords) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*k = KeywordText(node.Value)
		return nil
	case yaml.SequenceNode:
		list := []string{}
		if err := node.Decode(&list); err != nil {
			return err
		}
		*k = Keywords{List: list}
		return nil
	default:
		return fmt.Errorf("keywords must be a string or a list, line %d", node.Line)
	}
}

// MarshalYAML writes list keywords as a sequence and text keywords as a string.
func (k Keywords) MarshalYAML() (interface{}, error) {
	if k.IsList() {
		return k.List, nil
	}
	return k.Text, nil
}

// UnmarshalYAML accepts a raw content string or a mapping whose key order is kept.
func (v *Viewport) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Viewport{Raw: node.Value}
		return nil
	case yaml.MappingNode:
		out := Viewport{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			out.Pairs = append(out.Pairs, ViewportPair{
				Key:   node.Content[i].Value,
				Value: node.Content[i+1].Value,
			})
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("viewport must be a string or a mapping, line %d", node.Line)
	}
}
