package accounting

import (
	"fmt"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Direction tells whether a transaction moved funds into or out of a wallet.
type Direction string

const (
	Received Direction = "RECEIVED"
	Sent     Direction = "SENT"
)

// TransactionDirection classifies a signed native amount.
// Zero counts as received, matching how the wallet core reports self-sends.
func TransactionDirection(nativeAmount string) (Direction, error) {
	amount, err := decimal.NewFromString(nativeAmount)
	if err != nil {
		return "", fmt.Errorf("%w: native amount %q", apperrors.ErrInvalidAmount, nativeAmount)
	}
	if amount.GreaterThanOrEqual(decimal.Zero) {
		return Received, nil
	}
	return Sent, nil
}

// IsReceivedTransaction reports whether nativeAmount is zero or positive.
func IsReceivedTransaction(nativeAmount string) (bool, error) {
	dir, err := TransactionDirection(nativeAmount)
	if err != nil {
		return false, err
	}
	return dir == Received, nil
}

// IsSentTransaction reports whether nativeAmount is negative.
func IsSentTransaction(nativeAmount string) (bool, error) {
	received, err := IsReceivedTransaction(nativeAmount)
	if err != nil {
		return false, err
	}
	return !received, nil
}
