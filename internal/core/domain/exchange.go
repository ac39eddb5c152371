package domain

// ExchangeData is what a flip input shows: an amount in the primary currency
// and its equivalent in the secondary one.
type ExchangeData struct {
	PrimaryDisplayAmount   string `json:"primaryDisplayAmount"`
	PrimaryDisplayName     string `json:"primaryDisplayName"`
	SecondaryDisplayAmount string `json:"secondaryDisplayAmount"`
	SecondaryDisplaySymbol string `json:"secondaryDisplaySymbol"`
	SecondaryCurrencyCode  string `json:"secondaryCurrencyCode"`
}

// IsComplete reports whether every field needed for rendering is present.
func (e ExchangeData) IsComplete() bool {
	return e.PrimaryDisplayAmount != "" &&
		e.PrimaryDisplayName != "" &&
		e.SecondaryDisplayAmount != "" &&
		e.SecondaryDisplaySymbol != "" &&
		e.SecondaryCurrencyCode != ""
}

// ReceiveAddress is a wallet's next unused address as returned by the SDK.
type ReceiveAddress struct {
	PublicAddress string            `json:"publicAddress"`
	NativeAmount  string            `json:"nativeAmount,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
