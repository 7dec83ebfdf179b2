package timefmt

import (
	"strings"
	"time"
)

// ISOLayout is the output format of ToISO: UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Layouts accepted for string input, tried in order. Values without a zone
// are read as UTC.
var isoInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// ToISO normalizes a date-like value to ISO 8601. It accepts time.Time,
// *time.Time and string; anything absent, zero or unparseable yields ok=false.
func ToISO(value any) (string, bool) {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return "", false
		}
		t = *v
	case string:
		parsed, ok := parseDate(v)
		if !ok {
			return "", false
		}
		t = parsed
	default:
		return "", false
	}

	if t.IsZero() {
		return "", false
	}
	return t.UTC().Format(ISOLayout), true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
