package utils

import "github.com/SscSPs/wallet_denominations/internal/core/domain"

// FindDenominationSymbol returns the symbol of the denomination called name.
func FindDenominationSymbol(denoms []domain.EdgeDenomination, name string) (string, bool) {
	for _, d := range denoms {
		if d.Name == name {
			return d.Symbol, true
		}
	}
	return "", false
}

// MergeTokens appends account-level tokens to the plugin tokens.
// Plugin entries take priority when both carry the same currency code.
func MergeTokens(preferred, account []domain.MetaToken) []domain.MetaToken {
	merged := make([]domain.MetaToken, 0, len(preferred)+len(account))
	merged = append(merged, preferred...)
	for _, tok := range account {
		if !containsToken(merged, tok.CurrencyCode) {
			merged = append(merged, tok)
		}
	}
	return merged
}

// MergeTokensRemoveInvisible is MergeTokens but drops account tokens hidden by the user.
// Duplicates are checked against the plugin tokens only.
func MergeTokensRemoveInvisible(preferred, account []domain.MetaToken) []domain.MetaToken {
	merged := make([]domain.MetaToken, 0, len(preferred)+len(account))
	merged = append(merged, preferred...)
	for _, tok := range account {
		if tok.Visible() && !containsToken(preferred, tok.CurrencyCode) {
			merged = append(merged, tok)
		}
	}
	return merged
}

func containsToken(tokens []domain.MetaToken, currencyCode string) bool {
	for _, t := range tokens {
		if t.CurrencyCode == currencyCode {
			return true
		}
	}
	return false
}
