package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/SscSPs/wallet_denominations/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// ReceiveAddressService resolves receive addresses for many wallets at once.
type ReceiveAddressService struct {
	BaseService
	// limit caps concurrent SDK calls; zero or less means unlimited
	limit int
}

// NewReceiveAddressService creates a ReceiveAddressService.
func NewReceiveAddressService(limit int) *ReceiveAddressService {
	return &ReceiveAddressService{limit: limit}
}

// GetReceiveAddresses asks every wallet for its receive address concurrently.
// The result has exactly the keys of wallets. If any wallet fails, the whole
// batch fails and the remaining calls see a cancelled context.
func (s *ReceiveAddressService) GetReceiveAddresses(ctx context.Context, wallets map[string]ports.CurrencyWallet) (map[string]domain.ReceiveAddress, error) {
	g, gctx := errgroup.WithContext(ctx)
	if s.limit > 0 {
		g.SetLimit(s.limit)
	}

	var mu sync.Mutex
	addresses := make(map[string]domain.ReceiveAddress, len(wallets))
	for id, wallet := range wallets {
		g.Go(func() error {
			addr, err := wallet.GetReceiveAddress(gctx)
			if err != nil {
				return fmt.Errorf("failed to get receive address for wallet %s: %w", id, err)
			}
			mu.Lock()
			addresses[id] = addr
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Receive address batch failed", slog.Int("wallets", len(wallets)))
		return nil, err
	}
	s.LogDebug(ctx, "Resolved receive addresses", slog.Int("wallets", len(wallets)))
	return addresses, nil
}
