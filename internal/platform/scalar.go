// Package platform holds the raw, platform-specific payload shapes and the
// scalar helpers shared by the shopify and bigcommerce sub-packages.
package platform

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ID is an identifier that a platform API serializes either as a JSON string
// (Shopify GraphQL) or as a JSON number (Shopify REST, BigCommerce). It is
// held as its string form; numeric coercion happens at the denormalization
// boundary where an API demands a number.
type ID string

// UnmarshalJSON accepts a string, a number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "unmarshal string id")
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "unmarshal numeric id")
	}
	*id = ID(n.String())

	return nil
}

// String returns the identifier in its canonical string form.
func (id ID) String() string {
	return string(id)
}

// Int converts the identifier to the numeric form some platform endpoints
// require (BigCommerce address and option ids).
func (id ID) Int() (int, error) {
	n, err := strconv.Atoi(string(id))
	if err != nil {
		return 0, errors.Wrapf(err, "identifier %q is not numeric", string(id))
	}

	return n, nil
}

// Decimal is a decimal amount that a platform API serializes either as a JSON
// string or as a JSON number. The string form is preserved verbatim.
type Decimal string

// UnmarshalJSON accepts a string, a number or null.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "unmarshal string decimal")
		}
		*d = Decimal(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "unmarshal numeric decimal")
	}
	*d = Decimal(n.String())

	return nil
}

// String returns the decimal in its string form.
func (d Decimal) String() string {
	return string(d)
}

// Float parses the decimal for arithmetic. An empty decimal parses to zero.
func (d Decimal) Float() (float64, error) {
	if d == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "decimal %q is not numeric", string(d))
	}

	return f, nil
}

// FormatAmount renders a float the way the upstream SDKs coerce numbers to
// strings: no exponent, no trailing zeros ("85", "12.5").
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
