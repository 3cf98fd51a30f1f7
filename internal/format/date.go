package format

import (
	"time"

	"github.com/pkg/errors"
)

// DateStyle selects how much of a timestamp is rendered.
type DateStyle string

const (
	DateStyleDateTime DateStyle = "datetime"
	DateStyleDate     DateStyle = "date"
	DateStyleTime     DateStyle = "time"
)

// The platforms disagree on timestamp encoding: Shopify sends RFC 3339,
// BigCommerce the RFC 1123 form with a numeric zone.
var timestampLayouts = []string{time.RFC3339, time.RFC1123Z, time.RFC1123}

// ParseTimestamp parses a platform timestamp in any of the known encodings.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized timestamp %q", value)
}

// Timestamp renders a platform timestamp in the given style.
func Timestamp(value string, style DateStyle) (string, error) {
	ts, err := ParseTimestamp(value)
	if err != nil {
		return "", err
	}

	switch style {
	case DateStyleDate:
		return ts.Format("January 2, 2006"), nil
	case DateStyleTime:
		return ts.Format("3:04 PM"), nil
	default:
		return ts.Format("January 2, 2006 3:04 PM"), nil
	}
}
