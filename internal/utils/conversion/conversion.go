// Package conversion translates amounts between a currency's native integer
// units and its display or exchange denominations.
package conversion

import (
	"fmt"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DividePrecision is the number of fractional digits kept by every division.
// All conversions share it so that round trips do not drift.
const DividePrecision = 18

// Converter turns an amount string in one unit into an amount string in another.
type Converter func(amount string) (string, error)

// ConvertNativeToDenomination returns a Converter dividing native amounts by
// nativeToTargetRatio. The quotient is truncated to DividePrecision digits.
//
// A zero ratio panics; callers must never pass the unsupported denomination.
func ConvertNativeToDenomination(nativeToTargetRatio string) Converter {
	return func(nativeAmount string) (string, error) {
		amount, err := parseAmount(nativeAmount)
		if err != nil {
			return "", err
		}
		ratio, err := parseAmount(nativeToTargetRatio)
		if err != nil {
			return "", err
		}
		return Divide(amount, ratio).String(), nil
	}
}

// ConvertNativeToDisplay converts amounts reported by the wallet core into
// the user's display denomination.
var ConvertNativeToDisplay = ConvertNativeToDenomination

// ConvertNativeToExchange converts amounts reported by the wallet core into
// the denomination exchange rates are quoted in.
var ConvertNativeToExchange = ConvertNativeToDenomination

// ConvertDisplayToNative returns a Converter multiplying display amounts by
// nativeToDisplayRatio. An empty amount converts to an empty string.
func ConvertDisplayToNative(nativeToDisplayRatio string) Converter {
	return func(displayAmount string) (string, error) {
		if displayAmount == "" {
			return "", nil
		}
		amount, err := parseAmount(displayAmount)
		if err != nil {
			return "", err
		}
		ratio, err := parseAmount(nativeToDisplayRatio)
		if err != nil {
			return "", err
		}
		return amount.Mul(ratio).String(), nil
	}
}

// Divide returns numerator/denominator truncated toward zero at DividePrecision.
func Divide(numerator, denominator decimal.Decimal) decimal.Decimal {
	q, _ := numerator.QuoRem(denominator, DividePrecision)
	return q
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, s)
	}
	return d, nil
}
