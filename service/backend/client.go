package backend

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
	"github.com/arbifans/goapp/domain/creator"
	"github.com/arbifans/goapp/domain/payment"
)

var (
	ErrStatusCodeNotOk = errors.New("unexpected backend status code")
)

// Client talks to the platform backend REST API.
type Client interface {
	// RequestPurchase interprets 402 as payment required and 200 as
	// already granted. Any other status is an error and the caller must
	// not proceed to payment.
	RequestPurchase(c bCtx.Ctx, id domain.AssetId) (*payment.PurchaseQuote, error)
	// VerifyPayment submits the payment proof. The amount is the human
	// decimal string from the invoice, passed through untouched.
	VerifyPayment(c bCtx.Ctx, id domain.AssetId, amount string, receiver domain.Address, tx domain.TxHash) error

	ListAssets(c bCtx.Ctx) ([]asset.Asset, error)
	GetAsset(c bCtx.Ctx, id domain.AssetId) (*asset.Asset, error)
	CreateAsset(c bCtx.Ctx, payload asset.CreateAssetPayload) (*asset.Asset, error)

	RegisterCreator(c bCtx.Ctx, payload creator.RegisterPayload) (*creator.Creator, error)
	GetCreator(c bCtx.Ctx, id domain.CreatorId) (*creator.Creator, error)
}

type ClientCfg struct {
	BaseUrl    string
	HttpClient http.Client
	Timeout    time.Duration
}

// purchaseRequiredBody is the 402 payload
type purchaseRequiredBody struct {
	PaymentDetails payment.Invoice `json:"paymentDetails"`
}

// verifyBody field names follow the backend contract verbatim
type verifyBody struct {
	RequiredAmountUsdt string         `json:"REQUIRED_AMOUNT_USDT"`
	ReceiverAddress    domain.Address `json:"RECEIVER_ADDRESS"`
	TxHash             domain.TxHash  `json:"txHash"`
}
