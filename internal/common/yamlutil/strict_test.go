package yamlutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	var s sample
	require.NoError(t, UnmarshalStrict([]byte("name: a\ncount: 2\n"), &s))
	assert.Equal(t, sample{Name: "a", Count: 2}, s)
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: a\ncuont: 2\n"), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration field (check for typos)")
	assert.Contains(t, err.Error(), "cuont")
}

func TestUnmarshalStrict_EmptyDocument(t *testing.T) {
	s := sample{Name: "kept"}
	require.NoError(t, UnmarshalStrict(nil, &s))
	assert.Equal(t, "kept", s.Name)
}

func TestUnmarshalStrict_SyntaxError(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: [unclosed\n"), &s)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown configuration field")
}

func TestDecodeStrict_FirstDocumentOnly(t *testing.T) {
	var s sample
	require.NoError(t, DecodeStrict(strings.NewReader("name: first\n---\nname: second\n"), &s))
	assert.Equal(t, "first", s.Name)
}
