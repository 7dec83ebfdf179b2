package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalStrict unmarshals YAML data with strict field checking enabled.
// Unknown fields cause an error; an empty document leaves v untouched.
func UnmarshalStrict(data []byte, v interface{}) error {
	return DecodeStrict(bytes.NewReader(data), v)
}

// DecodeStrict is UnmarshalStrict for a stream. Only the first document is read.
func DecodeStrict(r io.Reader, v interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "field") && strings.Contains(errStr, "not found") {
		return fmt.Errorf("unknown configuration field (check for typos): %w", err)
	}
	return err
}
