package domain

// MetaToken is a token that rides on a parent wallet, either from the currency
// plugin or added by the user at account level.
type MetaToken struct {
	CurrencyName    string             `json:"currencyName"`
	CurrencyCode    string             `json:"currencyCode"`
	ContractAddress string             `json:"contractAddress,omitempty"`
	Denominations   []EdgeDenomination `json:"denominations"`
	IsVisible       *bool              `json:"isVisible,omitempty"` // nil means visible
}

// Visible reports whether the token should be shown. Unset counts as visible.
func (t MetaToken) Visible() bool {
	return t.IsVisible == nil || *t.IsVisible
}
