// Package parse handles the locale-ambiguous number and date tokens
// found on B2B invoices.
package parse

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Number parses a monetary or quantity token that may use either the
// European ("1.234,56") or the simple ("1234.56") convention, possibly
// with stray spaces.
//
// When both '.' and ',' are present the token is always treated as
// European: dots are thousands separators and the comma is the decimal
// mark. Otherwise any comma is taken as the decimal mark.
func Number(token string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(token, " ", "")
	if strings.Contains(cleaned, ".") && strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a numeric token %q: %w", token, err)
	}
	return d, nil
}
