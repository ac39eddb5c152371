package conversion_test

import (
	"math"
	"testing"

	"github.com/SscSPs/wallet_denominations/internal/apperrors"
	"github.com/SscSPs/wallet_denominations/internal/utils/conversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecisionAdjust(t *testing.T) {
	tests := []struct {
		name   string
		params conversion.PrecisionAdjustParams
		want   int
	}{
		{
			name:   "exact power of ten above one",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 100, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1"},
			want:   0,
		},
		{
			name:   "exact power of ten below one",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 0.01, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1"},
			want:   1,
		},
		{
			name:   "bitcoin priced in dollars",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 65000, SecondaryExchangeMultiplier: "100", PrimaryExchangeMultiplier: "100000000"},
			want:   1,
		},
		{
			name:   "cheap coin with eight decimals",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 0.5, SecondaryExchangeMultiplier: "100", PrimaryExchangeMultiplier: "100000000"},
			want:   6,
		},
		{
			name:   "ratio above one needs nothing",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 1000, SecondaryExchangeMultiplier: "100", PrimaryExchangeMultiplier: "100"},
			want:   0,
		},
		{
			name:   "adjust ratio exactly one thousandth",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 1, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1000"},
			want:   2,
		},
		{
			name:   "adjust ratio exactly one tenth",
			params: conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 2, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "10"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conversion.PrecisionAdjust(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrecisionAdjust_Errors(t *testing.T) {
	tests := []struct {
		name    string
		params  conversion.PrecisionAdjustParams
		wantErr error
	}{
		{
			name:    "zero ratio",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 0, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative ratio",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: -5, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "nan ratio",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: math.NaN(), SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "zero primary multiplier",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 10, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "0"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "garbage secondary multiplier",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 10, SecondaryExchangeMultiplier: "cents", PrimaryExchangeMultiplier: "1"},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "underflow",
			params:  conversion.PrecisionAdjustParams{ExchangeSecondaryToPrimaryRatio: 1, SecondaryExchangeMultiplier: "1", PrimaryExchangeMultiplier: "1000000000000000000000"},
			wantErr: apperrors.ErrPrecisionUnderflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conversion.PrecisionAdjust(tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
