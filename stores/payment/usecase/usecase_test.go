package usecase

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/ptr"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/payment"
	mPayment "github.com/arbifans/goapp/domain/payment/mocks"
	mUnlock "github.com/arbifans/goapp/domain/unlock/mocks"
	mWallet "github.com/arbifans/goapp/domain/wallet/mocks"
	mBackend "github.com/arbifans/goapp/service/backend/mocks"
)

var (
	mockCtx = ctx.Background()

	testChainId  = domain.ChainIdArbitrumSepolia
	testToken    = domain.Address("0x83bde9df64af5e475db44ba21c1df25e19a0cf9a")
	testReceiver = domain.Address("0x000000000000000000000000000000000000beef")
	testTxHash   = domain.TxHash("0xabcdef0000000000000000000000000000000000000000000000000000000000")
)

type usecaseSuite struct {
	suite.Suite

	backend *mBackend.Client
	wallet  *mWallet.Wallet
	unlock  *mUnlock.Usecase
	pending *mPayment.PendingRepo
	im      payment.Usecase
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	s.backend = &mBackend.Client{}
	s.wallet = &mWallet.Wallet{}
	s.unlock = &mUnlock.Usecase{}
	s.pending = &mPayment.PendingRepo{}
	s.im = New(&Cfg{
		Backend:           s.backend,
		Wallet:            s.wallet,
		Unlock:            s.unlock,
		Pending:           s.pending,
		ChainId:           testChainId,
		TokenAddress:      testToken,
		RetryBackoffStart: time.Millisecond,
		RetryBackoffLimit: 4 * time.Millisecond,
	})
}

func (s *usecaseSuite) paymentRequired(invoice *payment.Invoice) *payment.PurchaseQuote {
	return &payment.PurchaseQuote{State: payment.QuoteStatePaymentRequired, Invoice: invoice}
}

func (s *usecaseSuite) TestUnlockHappyPath() {
	id := domain.AssetId(42)
	invoice := &payment.Invoice{Receiver: testReceiver, Amount: "2.5"}

	s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(invoice), nil).Once()
	s.wallet.On("IsConnected").Return(true)
	s.wallet.On("SendTransfer", mockCtx, testToken, testReceiver, big.NewInt(2500000), testChainId).
		Return(testTxHash, nil).Once()
	s.backend.On("VerifyPayment", mockCtx, id, "2.5", testReceiver, testTxHash).Return(nil).Once()
	s.unlock.On("Record", mockCtx, id).Return(nil).Once()

	res, err := s.im.Unlock(mockCtx, id)
	s.NoError(err)
	s.Require().NotNil(res)
	s.Equal(id, res.AssetId)
	s.Equal(testTxHash, res.TxHash)
	s.False(res.AlreadyGranted)

	s.backend.AssertExpectations(s.T())
	s.wallet.AssertExpectations(s.T())
	s.unlock.AssertExpectations(s.T())
	s.pending.AssertNotCalled(s.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestUnlockUsesInvoiceTokenAndDecimals() {
	id := domain.AssetId(1)
	otherToken := domain.Address("0x000000000000000000000000000000000000cafe")
	invoice := &payment.Invoice{
		Receiver:     testReceiver,
		Amount:       "0.75",
		TokenAddress: otherToken,
		Decimals:     ptr.Int32(2),
	}

	s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(invoice), nil).Once()
	s.wallet.On("IsConnected").Return(true)
	s.wallet.On("SendTransfer", mockCtx, otherToken, testReceiver, big.NewInt(75), testChainId).
		Return(testTxHash, nil).Once()
	s.backend.On("VerifyPayment", mockCtx, id, "0.75", testReceiver, testTxHash).Return(nil).Once()
	s.unlock.On("Record", mockCtx, id).Return(nil).Once()

	_, err := s.im.Unlock(mockCtx, id)
	s.NoError(err)
	s.wallet.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestUnlockAlreadyGranted() {
	id := domain.AssetId(7)
	s.backend.On("RequestPurchase", mockCtx, id).
		Return(&payment.PurchaseQuote{State: payment.QuoteStateAlreadyGranted}, nil).Once()
	s.unlock.On("Record", mockCtx, id).Return(nil).Once()

	res, err := s.im.Unlock(mockCtx, id)
	s.NoError(err)
	s.Require().NotNil(res)
	s.True(res.AlreadyGranted)
	s.Empty(res.TxHash)

	s.unlock.AssertExpectations(s.T())
	s.wallet.AssertNotCalled(s.T(), "SendTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestUnlockRejectsInvalidInvoice() {
	cases := []struct {
		desc    string
		invoice *payment.Invoice
	}{
		{desc: "nil invoice", invoice: nil},
		{desc: "missing amount", invoice: &payment.Invoice{Receiver: testReceiver}},
		{desc: "missing receiver", invoice: &payment.Invoice{Amount: "1"}},
	}
	for _, c := range cases {
		s.SetupTest()
		id := domain.AssetId(9)
		s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(c.invoice), nil).Once()

		_, err := s.im.Unlock(mockCtx, id)
		s.ErrorIs(err, domain.ErrInvalidInvoice, c.desc)
		s.wallet.AssertNotCalled(s.T(), "SendTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		s.unlock.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	}
}

func (s *usecaseSuite) TestUnlockWalletNotConnected() {
	id := domain.AssetId(3)
	invoice := &payment.Invoice{Receiver: testReceiver, Amount: "1"}
	s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(invoice), nil).Once()
	s.wallet.On("IsConnected").Return(false)

	_, err := s.im.Unlock(mockCtx, id)
	s.ErrorIs(err, domain.ErrWalletNotConnected)
	s.wallet.AssertNotCalled(s.T(), "SendTransfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestUnlockTransferRejected() {
	id := domain.AssetId(5)
	invoice := &payment.Invoice{Receiver: testReceiver, Amount: "1"}
	s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(invoice), nil).Once()
	s.wallet.On("IsConnected").Return(true)
	s.wallet.On("SendTransfer", mockCtx, testToken, testReceiver, big.NewInt(1000000), testChainId).
		Return(domain.TxHash(""), domain.ErrInternalServerError).Once()

	_, err := s.im.Unlock(mockCtx, id)
	s.Error(err)
	s.backend.AssertNotCalled(s.T(), "VerifyPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.unlock.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	s.pending.AssertNotCalled(s.T(), "Enqueue", mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestUnlockVerifyRejectedEnqueuesPending() {
	id := domain.AssetId(6)
	invoice := &payment.Invoice{Receiver: testReceiver, Amount: "2.5"}
	s.backend.On("RequestPurchase", mockCtx, id).Return(s.paymentRequired(invoice), nil).Once()
	s.wallet.On("IsConnected").Return(true)
	s.wallet.On("SendTransfer", mockCtx, testToken, testReceiver, big.NewInt(2500000), testChainId).
		Return(testTxHash, nil).Once()
	s.backend.On("VerifyPayment", mockCtx, id, "2.5", testReceiver, testTxHash).
		Return(domain.ErrVerificationRejected).Once()
	s.pending.On("Enqueue", mockCtx, mock.MatchedBy(func(p payment.PendingVerification) bool {
		return p.Id != "" &&
			p.AssetId == id &&
			p.TxHash == testTxHash &&
			p.Amount == "2.5" &&
			p.Receiver == testReceiver &&
			!p.CreatedAt.IsZero()
	})).Return(nil).Once()

	_, err := s.im.Unlock(mockCtx, id)
	s.ErrorIs(err, domain.ErrVerificationRejected)
	s.unlock.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	s.pending.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestUnlockInFlightGuard() {
	id := domain.AssetId(8)
	entered := make(chan struct{})
	proceed := make(chan struct{})

	s.backend.On("RequestPurchase", mockCtx, id).
		Run(func(args mock.Arguments) {
			close(entered)
			<-proceed
		}).
		Return(&payment.PurchaseQuote{State: payment.QuoteStateAlreadyGranted}, nil).Once()
	s.unlock.On("Record", mockCtx, id).Return(nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.im.Unlock(mockCtx, id)
		s.NoError(err)
	}()

	<-entered
	_, err := s.im.Unlock(mockCtx, id)
	s.ErrorIs(err, domain.ErrUnlockInFlight)
	close(proceed)
	wg.Wait()

	s.backend.AssertNumberOfCalls(s.T(), "RequestPurchase", 1)
}

func (s *usecaseSuite) pendingItem(id string, assetId domain.AssetId) payment.PendingVerification {
	return payment.PendingVerification{
		Id:        id,
		AssetId:   assetId,
		TxHash:    testTxHash,
		Amount:    "2.5",
		Receiver:  testReceiver,
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
}

func (s *usecaseSuite) TestRetryPendingResolves() {
	p := s.pendingItem("a", 42)
	s.pending.On("List", mockCtx).Return([]payment.PendingVerification{p}, nil).Once()
	s.backend.On("VerifyPayment", mockCtx, p.AssetId, p.Amount, p.Receiver, p.TxHash).Return(nil).Once()
	s.unlock.On("Record", mockCtx, p.AssetId).Return(nil).Once()
	s.pending.On("Remove", mockCtx, "a").Return(nil).Once()

	unresolved, err := s.im.RetryPending(mockCtx)
	s.NoError(err)
	s.Empty(unresolved)
	s.pending.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestRetryPendingKeepsFailures() {
	a := s.pendingItem("a", 1)
	b := s.pendingItem("b", 2)
	s.pending.On("List", mockCtx).Return([]payment.PendingVerification{a, b}, nil).Once()
	s.backend.On("VerifyPayment", mockCtx, a.AssetId, a.Amount, a.Receiver, a.TxHash).
		Return(domain.ErrVerificationRejected).Once()
	s.backend.On("VerifyPayment", mockCtx, b.AssetId, b.Amount, b.Receiver, b.TxHash).Return(nil).Once()
	s.unlock.On("Record", mockCtx, b.AssetId).Return(nil).Once()
	s.pending.On("Remove", mockCtx, "b").Return(nil).Once()
	s.pending.On("Update", mockCtx, mock.MatchedBy(func(p payment.PendingVerification) bool {
		return p.Id == "a" && p.Attempts == 1
	})).Return(nil).Once()

	unresolved, err := s.im.RetryPending(mockCtx)
	s.NoError(err)
	s.Require().Len(unresolved, 1)
	s.Equal("a", unresolved[0].Id)
	s.pending.AssertExpectations(s.T())
	s.unlock.AssertNotCalled(s.T(), "Record", mockCtx, a.AssetId)
}
