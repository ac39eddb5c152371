package fiat

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// SymbolTable maps an ISO currency code to its symbol and label.
type SymbolTable map[string]domain.Currency

// DefaultTable returns a fresh copy of the built-in table.
func DefaultTable() SymbolTable {
	t := make(SymbolTable, len(builtinCurrencies))
	for _, c := range builtinCurrencies {
		t[c.CurrencyCode] = c
	}
	return t
}

type tableEntry struct {
	Code   string `mapstructure:"code" validate:"required,alphanum"`
	Symbol string `mapstructure:"symbol"`
	Name   string `mapstructure:"name"`
}

// LoadSymbolTable reads a replacement table from a YAML, JSON or TOML file
// holding a "currencies" list of {code, symbol, name} entries.
func LoadSymbolTable(path string) (SymbolTable, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read fiat symbol file %s: %w", path, err)
	}

	var entries []tableEntry
	if err := v.UnmarshalKey("currencies", &entries); err != nil {
		return nil, fmt.Errorf("failed to decode fiat symbol file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: fiat symbol file %s has no currencies", apperrors.ErrValidation, path)
	}

	validate := validator.New()
	table := make(SymbolTable, len(entries))
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d in %s: %v", apperrors.ErrValidation, i, path, err)
		}
		code := strings.ToUpper(e.Code)
		if _, dup := table[code]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %s in %s", apperrors.ErrDuplicate, code, path)
		}
		table[code] = domain.Currency{CurrencyCode: code, Symbol: e.Symbol, Name: e.Name}
	}
	return table, nil
}
