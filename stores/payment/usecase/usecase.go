package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arbifans/goapp/base/backoff"
	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/metrics"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/payment"
	"github.com/arbifans/goapp/domain/unlock"
	"github.com/arbifans/goapp/domain/wallet"
	"github.com/arbifans/goapp/service/backend"
)

const (
	defaultRetryBackoffStart = 500 * time.Millisecond
	defaultRetryBackoffLimit = 8 * time.Second
)

type Cfg struct {
	Backend backend.Client
	Wallet  wallet.Wallet
	Unlock  unlock.Usecase
	Pending payment.PendingRepo

	ChainId domain.ChainId
	// TokenAddress is the platform stablecoin, used when the invoice
	// does not name a token.
	TokenAddress domain.Address

	RetryBackoffStart time.Duration
	RetryBackoffLimit time.Duration
}

type impl struct {
	backend backend.Client
	wallet  wallet.Wallet
	unlock  unlock.Usecase
	pending payment.PendingRepo

	chainId      domain.ChainId
	tokenAddress domain.Address

	retryBackoffStart time.Duration
	retryBackoffLimit time.Duration

	inflightMu sync.Mutex
	inflight   map[domain.AssetId]struct{}

	metrics metrics.Service
}

func New(cfg *Cfg) payment.Usecase {
	im := &impl{
		backend:           cfg.Backend,
		wallet:            cfg.Wallet,
		unlock:            cfg.Unlock,
		pending:           cfg.Pending,
		chainId:           cfg.ChainId,
		tokenAddress:      cfg.TokenAddress,
		retryBackoffStart: cfg.RetryBackoffStart,
		retryBackoffLimit: cfg.RetryBackoffLimit,
		inflight:          map[domain.AssetId]struct{}{},
		metrics:           metrics.New("payment"),
	}
	if im.retryBackoffStart <= 0 {
		im.retryBackoffStart = defaultRetryBackoffStart
	}
	if im.retryBackoffLimit <= 0 {
		im.retryBackoffLimit = defaultRetryBackoffLimit
	}
	return im
}

func (im *impl) Unlock(c ctx.Ctx, id domain.AssetId) (*payment.UnlockResult, error) {
	defer im.metrics.BumpTime("unlock.time").End()
	im.metrics.BumpSum("unlock.count", 1)

	if !im.acquire(id) {
		return nil, domain.ErrUnlockInFlight
	}
	defer im.release(id)

	res, err := im.unlockLocked(c, id)
	if err != nil {
		im.metrics.BumpSum("unlock.err", 1)
		return nil, err
	}
	return res, nil
}

func (im *impl) unlockLocked(c ctx.Ctx, id domain.AssetId) (*payment.UnlockResult, error) {
	quote, err := im.backend.RequestPurchase(c, id)
	if err != nil {
		c.WithField("err", err).WithField("assetId", id).Error("backend.RequestPurchase failed")
		return nil, err
	}

	if quote.State == payment.QuoteStateAlreadyGranted {
		if err := im.unlock.Record(c, id); err != nil {
			c.WithField("err", err).WithField("assetId", id).Error("unlock.Record failed")
			return nil, err
		}
		return &payment.UnlockResult{AssetId: id, AlreadyGranted: true}, nil
	}

	invoice := quote.Invoice
	if err := invoice.Validate(); err != nil {
		c.WithField("assetId", id).Warn("invalid payment invoice")
		return nil, err
	}

	if !im.wallet.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}

	amount, err := payment.ToSmallestUnits(invoice.Amount, invoice.TokenDecimals())
	if err != nil {
		c.WithField("err", err).WithField("amount", invoice.Amount).Error("payment.ToSmallestUnits failed")
		return nil, err
	}

	token := invoice.TokenAddress
	if token.IsEmpty() {
		token = im.tokenAddress
	}

	txHash, err := im.wallet.SendTransfer(c, token, invoice.Receiver, amount, im.chainId)
	if err != nil {
		c.WithField("err", err).WithField("assetId", id).Error("wallet.SendTransfer failed")
		return nil, err
	}

	if err := im.backend.VerifyPayment(c, id, invoice.Amount, invoice.Receiver, txHash); err != nil {
		c.WithField("err", err).
			WithField("assetId", id).
			WithField("txHash", txHash).
			Error("backend.VerifyPayment failed")
		im.enqueuePending(c, id, txHash, invoice)
		return nil, err
	}

	if err := im.unlock.Record(c, id); err != nil {
		c.WithField("err", err).WithField("assetId", id).Error("unlock.Record failed")
		return nil, err
	}

	im.metrics.BumpSum("unlock.success.count", 1)
	return &payment.UnlockResult{AssetId: id, TxHash: txHash}, nil
}

// enqueuePending parks a paid-but-unverified transfer so the proof can
// be re-submitted later. The tx hash must never be lost here.
func (im *impl) enqueuePending(c ctx.Ctx, id domain.AssetId, txHash domain.TxHash, invoice *payment.Invoice) {
	p := payment.PendingVerification{
		Id:        uuid.New().String(),
		AssetId:   id,
		TxHash:    txHash,
		Amount:    invoice.Amount,
		Receiver:  invoice.Receiver,
		CreatedAt: time.Now().UTC(),
	}
	if err := im.pending.Enqueue(c, p); err != nil {
		c.WithField("err", err).
			WithField("assetId", id).
			WithField("txHash", txHash).
			Error("pending.Enqueue failed")
		return
	}
	im.metrics.BumpSum("pending.enqueue.count", 1)
}

func (im *impl) Pending(c ctx.Ctx) ([]payment.PendingVerification, error) {
	items, err := im.pending.List(c)
	if err != nil {
		c.WithField("err", err).Error("pending.List failed")
		return nil, err
	}
	return items, nil
}

func (im *impl) RetryPending(c ctx.Ctx) ([]payment.PendingVerification, error) {
	defer im.metrics.BumpTime("retry_pending.time").End()

	items, err := im.pending.List(c)
	if err != nil {
		c.WithField("err", err).Error("pending.List failed")
		return nil, err
	}

	bo := backoff.NewExponential(im.retryBackoffStart, im.retryBackoffLimit)
	unresolved := make([]payment.PendingVerification, 0, len(items))
	for i, p := range items {
		if i > 0 {
			if err := bo.Backoff(c); err != nil {
				unresolved = append(unresolved, items[i:]...)
				return unresolved, err
			}
		}
		if err := im.retryOne(c, p); err != nil {
			p.Attempts++
			if uerr := im.pending.Update(c, p); uerr != nil {
				c.WithField("err", uerr).WithField("id", p.Id).Error("pending.Update failed")
			}
			unresolved = append(unresolved, p)
		}
	}
	return unresolved, nil
}

func (im *impl) retryOne(c ctx.Ctx, p payment.PendingVerification) error {
	if err := im.backend.VerifyPayment(c, p.AssetId, p.Amount, p.Receiver, p.TxHash); err != nil {
		c.WithField("err", err).
			WithField("assetId", p.AssetId).
			WithField("txHash", p.TxHash).
			Warn("backend.VerifyPayment failed")
		im.metrics.BumpSum("retry_pending.err", 1)
		return err
	}
	if err := im.unlock.Record(c, p.AssetId); err != nil {
		c.WithField("err", err).WithField("assetId", p.AssetId).Error("unlock.Record failed")
		return err
	}
	if err := im.pending.Remove(c, p.Id); err != nil {
		c.WithField("err", err).WithField("id", p.Id).Error("pending.Remove failed")
	}
	im.metrics.BumpSum("retry_pending.success.count", 1)
	return nil
}

func (im *impl) acquire(id domain.AssetId) bool {
	im.inflightMu.Lock()
	defer im.inflightMu.Unlock()
	if _, ok := im.inflight[id]; ok {
		return false
	}
	im.inflight[id] = struct{}{}
	return true
}

func (im *impl) release(id domain.AssetId) {
	im.inflightMu.Lock()
	defer im.inflightMu.Unlock()
	delete(im.inflight, id)
}
