// Package fiat normalizes fiat currency codes and builds two-decimal fiat
// denominations from a read-only code→symbol table.
package fiat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/SscSPs/wallet_denominations/internal/core/domain"
)

// IsoPrefix marks a currency code as fiat in the wallet core's exchange cache.
const IsoPrefix = "iso:"

const (
	fiatPrecision  = 2
	fiatMultiplier = "100"
)

// restrictedCurrencyCodes never get a fiat denomination even though the symbol table lists them.
var restrictedCurrencyCodes = []string{"BTC"}

// FixFiatCurrencyCode adds the iso: prefix to a code we believe to be fiat.
// BTC and ETH come back unchanged since they are crypto codes that happen to be
// in the symbol table.
func FixFiatCurrencyCode(currencyCode string) string {
	if currencyCode == "BTC" || currencyCode == "ETH" {
		return currencyCode
	}
	if strings.HasPrefix(currencyCode, IsoPrefix) {
		return currencyCode
	}
	return IsoPrefix + currencyCode
}

// SelectOption is one row of a fiat picker.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Normalizer answers symbol and denomination lookups against a fixed table.
// It is safe for concurrent use; nothing is mutated after NewNormalizer returns.
type Normalizer struct {
	table SymbolTable
	codes []string
}

// NewNormalizer builds a Normalizer over table. The table is copied.
func NewNormalizer(table SymbolTable) *Normalizer {
	t := make(SymbolTable, len(table))
	codes := make([]string, 0, len(table))
	for code, c := range table {
		t[code] = c
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return &Normalizer{table: t, codes: codes}
}

// GetFiatSymbol returns the display symbol for code.
// The first "iso:" anywhere in code is removed before the lookup.
func (n *Normalizer) GetFiatSymbol(code string) (string, bool) {
	c, ok := n.lookup(code)
	return c.Symbol, ok
}

// GetCurrencyLabel returns the short display label for code, e.g. "US Dollar".
func (n *Normalizer) GetCurrencyLabel(code string) (string, bool) {
	c, ok := n.lookup(code)
	return c.Name, ok
}

func (n *Normalizer) lookup(code string) (domain.Currency, bool) {
	code = strings.Replace(code, IsoPrefix, "", 1)
	c, ok := n.table[code]
	return c, ok
}

// GetDenomFromIsoCode returns a two-decimal fiat denomination for currencyCode,
// or the unsupported sentinel for restricted codes.
// Every fiat is assumed to have cents; currencies without them are shown with two decimals anyway.
func (n *Normalizer) GetDenomFromIsoCode(currencyCode string) domain.Denomination {
	if slices.Contains(restrictedCurrencyCodes, currencyCode) {
		return domain.UnsupportedDenomination()
	}
	return domain.Denomination{
		Name:         currencyCode,
		CurrencyCode: currencyCode,
		Symbol:       n.table[currencyCode].Symbol,
		Precision:    fiatPrecision,
		Multiplier:   fiatMultiplier,
	}
}

// GetAllDenomsOfIsoCurrencies returns a denomination for every supported fiat, ordered by code.
func (n *Normalizer) GetAllDenomsOfIsoCurrencies() []domain.Denomination {
	denoms := make([]domain.Denomination, 0, len(n.codes))
	for _, code := range n.codes {
		d := n.GetDenomFromIsoCode(code)
		if d.Name != "" {
			denoms = append(denoms, d)
		}
	}
	return denoms
}

// GetSupportedFiats lists every table entry as a picker option, ordered by code.
func (n *Normalizer) GetSupportedFiats() []SelectOption {
	opts := make([]SelectOption, 0, len(n.codes))
	for _, code := range n.codes {
		opts = append(opts, SelectOption{
			Label: fmt.Sprintf("%s - %s", code, n.table[code].Symbol),
			Value: code,
		})
	}
	return opts
}
