package bytesize

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Size is a byte count that unmarshals from strings like "10mb" as well as
// plain integers. Units use base 1024.
type Size int64

// Parse converts s to a Size using base 1024 and rounding.
func Parse(s string) (Size, error) {
	n, err := ToBytes(s)
	if err != nil {
		return 0, err
	}
	return Size(n), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	size, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", raw, err)
	}
	*s = size
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (s Size) MarshalYAML() (interface{}, error) {
	return int64(s), nil
}

// UnmarshalJSON accepts both numbers (bytes) and strings ("512kb", "2 GB").
func (s *Size) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v, err := ToBytes(n)
		if err != nil {
			return err
		}
		*s = Size(v)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("size must be a string or number, got %s", string(data))
	}
	size, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", raw, err)
	}
	*s = size
	return nil
}

// Bytes returns the size as an int64.
func (s Size) Bytes() int64 {
	return int64(s)
}

// String implements fmt.Stringer using FromBytes defaults.
func (s Size) String() string {
	out, err := Format(float64(s))
	if err != nil {
		return fmt.Sprintf("%d", int64(s))
	}
	return out
}
