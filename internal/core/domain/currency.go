package domain

// Currency is one entry of the fiat reference table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // Short display label, e.g., "US Dollar"
}
