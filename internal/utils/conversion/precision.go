package conversion

import (
	"fmt"
	"math"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/shopspring/decimal"
)

// log10 of an exact power of ten can land just under the integer
// (e.g. 1.9999999999999996), so floors are nudged by this much.
const floatEpsilon = 0.000000001

// PrecisionAdjustParams describes a pair of currencies shown side by side.
type PrecisionAdjustParams struct {
	// ExchangeSecondaryToPrimaryRatio is the number of secondary units per primary unit.
	ExchangeSecondaryToPrimaryRatio float64
	SecondaryExchangeMultiplier     string
	PrimaryExchangeMultiplier       string
}

// PrecisionAdjust returns how many extra decimal places the primary amount
// needs so that one unit of the secondary currency still shows a non-zero value.
func PrecisionAdjust(params PrecisionAdjustParams) (int, error) {
	ratio := params.ExchangeSecondaryToPrimaryRatio
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 0, fmt.Errorf("%w: exchange ratio must be positive, got %v", apperrors.ErrValidation, ratio)
	}
	secondary, err := parseMultiplier(params.SecondaryExchangeMultiplier)
	if err != nil {
		return 0, err
	}
	primary, err := parseMultiplier(params.PrimaryExchangeMultiplier)
	if err != nil {
		return 0, err
	}

	order := math.Floor(math.Log10(ratio) + floatEpsilon)
	magnitude := decimal.New(1, int32(order))

	// exchange rate expressed in the secondary currency's smallest unit
	exchangeRate := magnitude.Mul(secondary)
	adjustRatio := Divide(exchangeRate, primary)

	if !adjustRatio.LessThan(decimal.NewFromInt(1)) {
		return 0, nil
	}
	if adjustRatio.IsZero() {
		return 0, fmt.Errorf("%w: adjust ratio below 1e-%d", apperrors.ErrPrecisionUnderflow, DividePrecision)
	}

	f, _ := adjustRatio.Float64()
	extra := int(math.Abs(2 + math.Floor(math.Log10(f)-floatEpsilon)))
	if extra > 0 {
		return extra, nil
	}
	return 0, nil
}

func parseMultiplier(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: multiplier must be a positive number, got %q", apperrors.ErrValidation, s)
	}
	return d, nil
}
