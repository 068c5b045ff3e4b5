package wallet

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/abi"
	bCtx "github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/mocks"
)

var (
	mockCtx = bCtx.Background()
)

const (
	testChainId = domain.ChainId(421614)
	testToken   = domain.Address("0x83BDe9dF64af5e475DB44ba21C1dF25e19A0cf9a")
	testTo      = domain.Address("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
)

type walletSuite struct {
	suite.Suite
	client *mocks.EthClientRepo
	im     *impl
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)

	s.client = &mocks.EthClientRepo{}
	w, err := NewWithClient(mockCtx, &Cfg{
		PrivateKey: common.Bytes2Hex(crypto.FromECDSA(key)),
		ChainId:    testChainId,
	}, s.client)
	s.Require().NoError(err)
	s.im = w.(*impl)
}

func (s *walletSuite) TestNotConnected() {
	w, err := NewWithClient(mockCtx, &Cfg{ChainId: testChainId}, s.client)
	s.Require().NoError(err)

	s.False(w.IsConnected())
	s.Equal(domain.EmptyAddress, w.Address())

	_, err = w.SendTransfer(mockCtx, testToken, testTo, big.NewInt(1), testChainId)
	s.ErrorIs(err, domain.ErrWalletNotConnected)
	s.client.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, mock.Anything)
}

func (s *walletSuite) TestChainIdMismatch() {
	_, err := s.im.SendTransfer(mockCtx, testToken, testTo, big.NewInt(1), domain.ChainId(1))
	s.ErrorIs(err, domain.ErrInvalidChainId)
	s.client.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, mock.Anything)
}

func (s *walletSuite) TestSendTransfer() {
	amount := big.NewInt(2500000)

	var sent *types.Transaction
	s.client.On("PendingNonceAt", mock.Anything, s.im.address).Return(uint64(3), nil)
	s.client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1000000000), nil)
	s.client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(60000), nil)
	s.client.On("SendTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*types.Transaction)
		}).
		Return(nil)

	hash, err := s.im.SendTransfer(mockCtx, testToken, testTo, amount, testChainId)
	s.NoError(err)
	s.Require().NotNil(sent)
	s.Equal(domain.TxHash(sent.Hash().Hex()), hash)

	s.Equal(common.HexToAddress(string(testToken)), *sent.To())
	s.Zero(sent.Value().Sign())
	s.Equal(uint64(3), sent.Nonce())
	s.Equal(uint64(60000), sent.Gas())

	expData, err := abi.ERC20TokenABI.Pack("transfer", common.HexToAddress(string(testTo)), amount)
	s.NoError(err)
	s.Equal(expData, sent.Data())
}

func (s *walletSuite) TestEstimateGasFallback() {
	s.client.On("PendingNonceAt", mock.Anything, s.im.address).Return(uint64(0), nil)
	s.client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	s.client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(0), domain.ErrInternalServerError)

	var sent *types.Transaction
	s.client.On("SendTransaction", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*types.Transaction)
		}).
		Return(nil)

	_, err := s.im.SendTransfer(mockCtx, testToken, testTo, big.NewInt(1), testChainId)
	s.NoError(err)
	s.Require().NotNil(sent)
	s.Equal(transferGasLimit, sent.Gas())
}

func (s *walletSuite) TestSendRejected() {
	s.client.On("PendingNonceAt", mock.Anything, s.im.address).Return(uint64(0), nil)
	s.client.On("SuggestGasPrice", mock.Anything).Return(big.NewInt(1), nil)
	s.client.On("EstimateGas", mock.Anything, mock.Anything).Return(uint64(21000), nil)
	s.client.On("SendTransaction", mock.Anything, mock.Anything).Return(domain.ErrInternalServerError)

	_, err := s.im.SendTransfer(mockCtx, testToken, testTo, big.NewInt(1), testChainId)
	s.ErrorIs(err, domain.ErrInternalServerError)
}
