package domain

import (
	"fmt"
	"sync"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// UnsupportedMultiplier is the multiplier carried by the sentinel denomination.
// It must never reach a conversion function.
const UnsupportedMultiplier = "0"

// Denomination describes one unit scale of a currency.
// Multiplier is the integer ratio between native units and this denomination's units.
type Denomination struct {
	Name         string `json:"name" validate:"required"`
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Precision    int    `json:"precision" validate:"gte=0"`
	Multiplier   string `json:"multiplier" validate:"required,multiplier"`
}

// EdgeDenomination is the denomination shape reported by the wallet SDK.
type EdgeDenomination struct {
	Name       string `json:"name"`
	Multiplier string `json:"multiplier"`
	Symbol     string `json:"symbol,omitempty"`
}

// UnsupportedDenomination returns the all-empty sentinel.
func UnsupportedDenomination() Denomination {
	return Denomination{Multiplier: UnsupportedMultiplier}
}

// IsUnsupported reports whether d is the sentinel returned for restricted codes.
func (d Denomination) IsUnsupported() bool {
	return d.Name == "" && d.Multiplier == UnsupportedMultiplier
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func denominationValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("multiplier", func(fl validator.FieldLevel) bool {
			return IsPositiveIntegerLiteral(fl.Field().String())
		})
	})
	return validate
}

// Validate checks that d can safely be used as a conversion ratio.
func (d Denomination) Validate() error {
	if err := denominationValidator().Struct(d); err != nil {
		return fmt.Errorf("%w: denomination %q: %v", apperrors.ErrValidation, d.Name, err)
	}
	return nil
}

// IsPositiveIntegerLiteral reports whether s is a run of ASCII digits with a non-zero value.
func IsPositiveIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	nonZero := false
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
		if r != '0' {
			nonZero = true
		}
	}
	return nonZero
}

// ConvertEdgeToGuiDenomination maps an SDK denomination into the display model.
// Precision is left at 0; callers fill it from settings.
func ConvertEdgeToGuiDenomination(ed EdgeDenomination) Denomination {
	return Denomination{
		Name:         ed.Name,
		CurrencyCode: ed.Name,
		Symbol:       ed.Symbol,
		Multiplier:   ed.Multiplier,
		Precision:    0,
	}
}
