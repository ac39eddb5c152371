package utils_test

import (
	"testing"

	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/SscSPs/wallet_denominations/internal/utils"
	"github.com/stretchr/testify/assert"
)

func codes(tokens []domain.MetaToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.CurrencyCode
	}
	return out
}

func TestFindDenominationSymbol(t *testing.T) {
	denoms := []domain.EdgeDenomination{
		{Name: "BTC", Multiplier: "100000000", Symbol: "₿"},
		{Name: "mBTC", Multiplier: "100000", Symbol: "m₿"},
	}
	sym, ok := utils.FindDenominationSymbol(denoms, "mBTC")
	assert.True(t, ok)
	assert.Equal(t, "m₿", sym)

	_, ok = utils.FindDenominationSymbol(denoms, "sats")
	assert.False(t, ok)
}

func TestMergeTokens(t *testing.T) {
	hidden := false
	plugin := []domain.MetaToken{{CurrencyCode: "REP", CurrencyName: "Augur"}, {CurrencyCode: "WINGS"}}
	account := []domain.MetaToken{
		{CurrencyCode: "REP", CurrencyName: "Custom Augur"},
		{CurrencyCode: "HUR"},
		{CurrencyCode: "HUR"},
		{CurrencyCode: "SECRET", IsVisible: &hidden},
	}

	merged := utils.MergeTokens(plugin, account)
	assert.Equal(t, []string{"REP", "WINGS", "HUR", "SECRET"}, codes(merged))
	assert.Equal(t, "Augur", merged[0].CurrencyName)

	visible := utils.MergeTokensRemoveInvisible(plugin, account)
	assert.Equal(t, []string{"REP", "WINGS", "HUR", "HUR"}, codes(visible))

	assert.Len(t, plugin, 2)
}
