package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	bCtx "github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/log"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/asset"
	"github.com/arbifans/goapp/domain/creator"
	"github.com/arbifans/goapp/domain/payment"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
	}
}

type client struct {
	baseUrl string
	client  http.Client
	timeout time.Duration
}

func (c *client) RequestPurchase(ctx bCtx.Ctx, id domain.AssetId) (*payment.PurchaseQuote, error) {
	url := fmt.Sprintf("%s/api/creator/assets/%s/purchase", c.baseUrl, id)
	status, body, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusPaymentRequired:
		resp := &purchaseRequiredBody{}
		if err := json.Unmarshal(body, resp); err != nil {
			ctx.WithField("err", err).Error("json.Unmarshal failed")
			return nil, err
		}
		return &payment.PurchaseQuote{
			State:   payment.QuoteStatePaymentRequired,
			Invoice: &resp.PaymentDetails,
		}, nil
	case http.StatusOK:
		return &payment.PurchaseQuote{
			State:         payment.QuoteStateAlreadyGranted,
			AccessPayload: json.RawMessage(body),
		}, nil
	default:
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("unexpected purchase status")
		return nil, ErrStatusCodeNotOk
	}
}

func (c *client) VerifyPayment(ctx bCtx.Ctx, id domain.AssetId, amount string, receiver domain.Address, tx domain.TxHash) error {
	url := fmt.Sprintf("%s/api/creator/assets/%s/verify", c.baseUrl, id)
	status, body, err := c.do(ctx, "POST", url, &verifyBody{
		RequiredAmountUsdt: amount,
		ReceiverAddress:    receiver,
		TxHash:             tx,
	})
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
			"body":       string(body),
		}).Error("verification rejected")
		return domain.ErrVerificationRejected
	}
	return nil
}

func (c *client) ListAssets(ctx bCtx.Ctx) ([]asset.Asset, error) {
	url := fmt.Sprintf("%s/api/creator/assets", c.baseUrl)
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	assets := []asset.Asset{}
	if err := json.Unmarshal(body, &assets); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return assets, nil
}

func (c *client) GetAsset(ctx bCtx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	url := fmt.Sprintf("%s/api/creator/assets/%s", c.baseUrl, id)
	status, body, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	res := &asset.Asset{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return res, nil
}

func (c *client) CreateAsset(ctx bCtx.Ctx, payload asset.CreateAssetPayload) (*asset.Asset, error) {
	url := fmt.Sprintf("%s/api/creator/assets", c.baseUrl)
	status, body, err := c.do(ctx, "POST", url, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("asset creation rejected")
		return nil, ErrStatusCodeNotOk
	}
	res := &asset.Asset{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return res, nil
}

func (c *client) RegisterCreator(ctx bCtx.Ctx, payload creator.RegisterPayload) (*creator.Creator, error) {
	url := fmt.Sprintf("%s/api/creator/register", c.baseUrl)
	status, body, err := c.do(ctx, "POST", url, payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("registration rejected")
		return nil, ErrStatusCodeNotOk
	}
	res := &creator.Creator{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if len(res.Name) == 0 {
		res.Name = payload.Name
	}
	if res.WalletAddress.IsEmpty() {
		res.WalletAddress = payload.WalletAddress
	}
	return res, nil
}

func (c *client) GetCreator(ctx bCtx.Ctx, id domain.CreatorId) (*creator.Creator, error) {
	url := fmt.Sprintf("%s/api/creator/%s", c.baseUrl, id)
	status, body, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	res := &creator.Creator{}
	if err := json.Unmarshal(body, res); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return res, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	status, body, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": status,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	return body, nil
}

func (c *client) do(ctx bCtx.Ctx, method, url string, payload interface{}) (int, []byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			ctx.WithField("err", err).Error("json.Marshal failed")
			return 0, nil, err
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}
