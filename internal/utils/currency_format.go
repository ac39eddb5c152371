package utils

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithDenominationPrecision formats an amount with the precision of a given denomination
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with BTC (precision 0) returns "12"
func FormatWithDenominationPrecision(amount decimal.Decimal, denom domain.Denomination) string {
	return amount.Round(int32(denom.Precision)).String()
}

// TruncateDecimals cuts a display amount to at most precision fractional digits.
// No rounding happens. An empty input becomes "0" unless allowBlank is set.
func TruncateDecimals(input string, precision int, allowBlank bool) string {
	if input == "" && !allowBlank {
		input = "0"
	}
	if !strings.Contains(input, ".") {
		return input
	}
	parts := strings.Split(input, ".")
	integers, decimals := parts[0], parts[1]
	if precision <= 0 {
		return integers
	}
	if len(decimals) > precision {
		decimals = decimals[:precision]
	}
	return integers + "." + decimals
}

// DecimalOrZero shortens amounts below one to decimalPlaces digits, returning
// "0" when nothing significant survives. Amounts of one or more are returned as is.
func DecimalOrZero(input string, decimalPlaces int) (string, error) {
	d, err := decimal.NewFromString(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, input)
	}
	if d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return input, nil
	}
	truncated := d.Truncate(int32(decimalPlaces))
	if truncated.IsZero() {
		return "0", nil
	}
	out := truncated.StringFixed(int32(decimalPlaces))
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
	}
	return out, nil
}
