package ports

import (
	"context"

	"github.com/SscSPs/wallet_denominations/internal/core/domain"
)

// CurrencyWallet is the slice of the wallet SDK handle this module needs.
// Context is included so address derivation can be cancelled.
type CurrencyWallet interface {
	GetReceiveAddress(ctx context.Context) (domain.ReceiveAddress, error)
}
