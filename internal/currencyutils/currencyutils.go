// Package currencyutils normalizes the European-formatted amounts found in
// the travel spreadsheets ("1 234,56") into decimal values.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseAmount parses a locale-formatted amount string into a decimal value.
// It handles European formats with space thousands separators and comma
// decimal separators, e.g. "1 234,56" -> 1234.56.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParseNullAmount parses an amount into a NullDecimal. Malformed values come
// back invalid rather than as an error: the row keeps living with the field
// nulled and the caller decides whether to log the failure.
func ParseNullAmount(amountStr string) decimal.NullDecimal {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.NullDecimal{}
	}

	amount, err := ParseAmount(amountStr)
	if err != nil {
		log.WithField("value", amountStr).Debug("Amount did not parse, treating as missing")
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: amount, Valid: true}
}

// StandardizeAmount converts a European amount string to the plain form that
// decimal.NewFromString accepts. Interior spaces (including non-breaking
// spaces used as thousands separators) are stripped, the decimal comma
// becomes a point, currency markers like "EUR" or the euro sign are removed.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	replacer := strings.NewReplacer(
		" ", "",
		" ", "",
		" ", "",
		"€", "",
		"EUR", "",
	)
	amountStr = replacer.Replace(amountStr)

	// Apostrophes show up as thousands separators in Swiss-style exports
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	if strings.Contains(amountStr, ",") {
		if strings.Contains(amountStr, ".") {
			// "1.234,56": the dot is a thousands separator
			amountStr = strings.ReplaceAll(amountStr, ".", "")
		}
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return amountStr
}

// FormatAmount formats a decimal amount for display with two decimal places
// and the euro sign, matching the dashboard's cost rendering.
func FormatAmount(amount decimal.Decimal) string {
	return "€" + amount.StringFixed(2)
}
