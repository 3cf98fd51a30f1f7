// Package format renders canonical values for display: money in the store's
// locale and platform timestamps in the configured style.
package format

import (
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money renders a money value for the given BCP 47 locale, e.g. "en-US".
// An unparseable locale falls back to English rather than failing the render.
func Money(amount, currencyCode, locale string) (string, error) {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "", errors.Wrapf(err, "parse amount %q", amount)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return "", errors.Wrapf(err, "parse currency %q", currencyCode)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	printer := message.NewPrinter(tag)
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value))), nil
}
