package payment

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
)

// DefaultTokenDecimals is the decimal precision of the platform's
// stablecoin. Invoices may override it.
const DefaultTokenDecimals = int32(6)

// Invoice is the server-issued description of a required payment. It is
// ephemeral, regenerated on every unlock attempt and never persisted.
type Invoice struct {
	Receiver     domain.Address `json:"receiver"`
	Amount       string         `json:"amount"`
	TokenAddress domain.Address `json:"tokenAddress,omitempty"`
	Decimals     *int32         `json:"decimals,omitempty"`
}

// Validate aborts the flow before any chain interaction when the invoice
// lacks a receiver or amount.
func (iv *Invoice) Validate() error {
	if iv == nil || iv.Receiver.IsEmpty() || len(iv.Amount) == 0 {
		return domain.ErrInvalidInvoice
	}
	return nil
}

// TokenDecimals returns the invoice's precision or the platform default.
func (iv *Invoice) TokenDecimals() int32 {
	if iv.Decimals != nil {
		return *iv.Decimals
	}
	return DefaultTokenDecimals
}

type QuoteState string

const (
	QuoteStatePaymentRequired QuoteState = "paymentRequired"
	QuoteStateAlreadyGranted  QuoteState = "alreadyGranted"
)

// PurchaseQuote is the discriminated result of the purchase endpoint:
// 402 carries an invoice, 200 carries the access payload.
type PurchaseQuote struct {
	State         QuoteState      `json:"state"`
	Invoice       *Invoice        `json:"invoice,omitempty"`
	AccessPayload json.RawMessage `json:"accessPayload,omitempty"`
}

// ToSmallestUnits scales a human decimal amount to the token's integer
// smallest-unit representation. Negative, non-numeric, or too-precise
// amounts are rejected.
func ToSmallestUnits(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}
	if d.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, domain.ErrInvalidAmount
	}
	return shifted.BigInt(), nil
}

// UnlockResult reports a finished unlock pipeline run.
type UnlockResult struct {
	AssetId        domain.AssetId `json:"assetId"`
	TxHash         domain.TxHash  `json:"txHash,omitempty"`
	AlreadyGranted bool           `json:"alreadyGranted"`
}

// PendingVerification correlates a dispatched transfer whose backend
// verification has not succeeded yet. Funds moved, access did not.
type PendingVerification struct {
	Id        string         `json:"id"`
	AssetId   domain.AssetId `json:"assetId"`
	TxHash    domain.TxHash  `json:"txHash"`
	Amount    string         `json:"amount"`
	Receiver  domain.Address `json:"receiver"`
	CreatedAt time.Time      `json:"createdAt"`
	Attempts  int            `json:"attempts"`
}

// PendingRepo is the durable queue of pending verifications.
type PendingRepo interface {
	Enqueue(c ctx.Ctx, p PendingVerification) error
	List(c ctx.Ctx) ([]PendingVerification, error)
	Update(c ctx.Ctx, p PendingVerification) error
	Remove(c ctx.Ctx, id string) error
}

type Usecase interface {
	// Unlock runs the full pipeline: quote, pay, verify, record
	Unlock(c ctx.Ctx, id domain.AssetId) (*UnlockResult, error)
	Pending(c ctx.Ctx) ([]PendingVerification, error)
	// RetryPending re-submits queued verifications and returns the ones
	// still unresolved
	RetryPending(c ctx.Ctx) ([]PendingVerification, error)
}
