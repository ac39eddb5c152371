package accounting_test

import (
	"testing"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionDirection(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   accounting.Direction
	}{
		{name: "incoming", amount: "150000000", want: accounting.Received},
		{name: "zero", amount: "0", want: accounting.Received},
		{name: "outgoing", amount: "-2500", want: accounting.Sent},
		{name: "huge outgoing", amount: "-340282366920938463463374607431768211455", want: accounting.Sent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.TransactionDirection(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			received, err := accounting.IsReceivedTransaction(tt.amount)
			require.NoError(t, err)
			sent, err := accounting.IsSentTransaction(tt.amount)
			require.NoError(t, err)
			assert.NotEqual(t, received, sent)
		})
	}
}

func TestTransactionDirection_Invalid(t *testing.T) {
	_, err := accounting.TransactionDirection("ten")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	_, err = accounting.IsSentTransaction("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
