// Package currencyutils provides common decimal amount operations used
// throughout the application. FatturaPA numeric values arrive with
// either a comma or a dot as decimal separator.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string amount into a decimal value, normalising
// the comma decimal separator and stripping currency noise. An error is
// returned for input that is not a number at all.
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

// ParseAmountLenient parses like ParseAmount but collapses any
// non-numeric text to zero. The validation checks use this form so that
// a malformed quantity or price surfaces as a non-positive-value finding
// instead of aborting the run.
func ParseAmountLenient(amountStr string) decimal.Decimal {
	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount converts Italian-formatted amount strings to a form
// decimal.NewFromString accepts: "1.234,56" -> "1234.56", "2,5" -> "2.5".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	amountStr = strings.ReplaceAll(amountStr, " ", "")
	amountStr = strings.TrimPrefix(amountStr, "€")
	amountStr = strings.TrimSuffix(amountStr, "€")

	if strings.Contains(amountStr, ",") {
		// Dots before a comma are thousand separators.
		if strings.Contains(amountStr, ".") &&
			strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
		}
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}

	return amountStr
}

// FormatAmount renders a decimal with two decimal places for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
