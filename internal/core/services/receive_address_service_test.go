package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/wallet_denominations/internal/core/domain"
	"github.com/SscSPs/wallet_denominations/internal/core/ports"
	"github.com/SscSPs/wallet_denominations/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyWallet ---
type MockCurrencyWallet struct {
	mock.Mock
}

func (m *MockCurrencyWallet) GetReceiveAddress(ctx context.Context) (domain.ReceiveAddress, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReceiveAddress), args.Error(1)
}

// blockingWallet waits for its context to be cancelled.
type blockingWallet struct{}

func (blockingWallet) GetReceiveAddress(ctx context.Context) (domain.ReceiveAddress, error) {
	<-ctx.Done()
	return domain.ReceiveAddress{}, ctx.Err()
}

// --- Test Suite ---
type ReceiveAddressServiceTestSuite struct {
	suite.Suite
	service *services.ReceiveAddressService
}

func (suite *ReceiveAddressServiceTestSuite) SetupTest() {
	suite.service = services.NewReceiveAddressService(0)
}

func TestReceiveAddressServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiveAddressServiceTestSuite))
}

func (suite *ReceiveAddressServiceTestSuite) TestGetReceiveAddresses_Success() {
	btc := new(MockCurrencyWallet)
	eth := new(MockCurrencyWallet)
	btc.On("GetReceiveAddress", mock.Anything).Return(domain.ReceiveAddress{PublicAddress: "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}, nil).Once()
	eth.On("GetReceiveAddress", mock.Anything).Return(domain.ReceiveAddress{PublicAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}, nil).Once()

	got, err := suite.service.GetReceiveAddresses(context.Background(), map[string]ports.CurrencyWallet{
		"wallet-btc": btc,
		"wallet-eth": eth,
	})

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal("bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", got["wallet-btc"].PublicAddress)
	suite.Equal("0x52908400098527886E0F7030069857D2E4169EE7", got["wallet-eth"].PublicAddress)
	btc.AssertExpectations(suite.T())
	eth.AssertExpectations(suite.T())
}

func (suite *ReceiveAddressServiceTestSuite) TestGetReceiveAddresses_Empty() {
	got, err := suite.service.GetReceiveAddresses(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Empty(got)
	suite.NotNil(got)
}

func (suite *ReceiveAddressServiceTestSuite) TestGetReceiveAddresses_OneFailureFailsBatch() {
	sdkErr := errors.New("wallet not synced")
	bad := new(MockCurrencyWallet)
	bad.On("GetReceiveAddress", mock.Anything).Return(domain.ReceiveAddress{}, sdkErr).Once()

	got, err := suite.service.GetReceiveAddresses(context.Background(), map[string]ports.CurrencyWallet{
		"wallet-bad":  bad,
		"wallet-slow": blockingWallet{},
	})

	suite.Nil(got)
	suite.ErrorIs(err, sdkErr)
	suite.Contains(err.Error(), "wallet-bad")
}

func (suite *ReceiveAddressServiceTestSuite) TestGetReceiveAddresses_ParentCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := suite.service.GetReceiveAddresses(ctx, map[string]ports.CurrencyWallet{"wallet-slow": blockingWallet{}})
	suite.ErrorIs(err, context.Canceled)
}

func TestReceiveAddressService_Limited(t *testing.T) {
	service := services.NewReceiveAddressService(1)
	wallets := make(map[string]ports.CurrencyWallet)
	for _, id := range []string{"a", "b", "c"} {
		w := new(MockCurrencyWallet)
		w.On("GetReceiveAddress", mock.Anything).Return(domain.ReceiveAddress{PublicAddress: "addr-" + id}, nil)
		wallets[id] = w
	}

	got, err := service.GetReceiveAddresses(context.Background(), wallets)
	assert.NoError(t, err)
	assert.Equal(t, map[string]domain.ReceiveAddress{
		"a": {PublicAddress: "addr-a"},
		"b": {PublicAddress: "addr-b"},
		"c": {PublicAddress: "addr-c"},
	}, got)
}
