package wallet

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/arbifans/goapp/base/abi"
	bCtx "github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/log"
	"github.com/arbifans/goapp/domain"
	"github.com/arbifans/goapp/domain/wallet"
)

// fallback when the node refuses to estimate, enough for an erc20 transfer
const transferGasLimit = uint64(100000)

type Cfg struct {
	RpcUrl string
	// PrivateKey is the hex-encoded signing key. Empty means no wallet
	// is connected on this profile.
	PrivateKey string
	ChainId    domain.ChainId
}

type impl struct {
	client  domain.EthClientRepo
	key     *ecdsa.PrivateKey
	address common.Address
	chainId domain.ChainId
}

// New dials the rpc node and builds a wallet from cfg.
func New(c bCtx.Ctx, cfg *Cfg) (wallet.Wallet, error) {
	client, err := ethclient.DialContext(c, cfg.RpcUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	return NewWithClient(c, cfg, client)
}

// NewWithClient builds a wallet on an already-connected eth client.
func NewWithClient(c bCtx.Ctx, cfg *Cfg, client domain.EthClientRepo) (wallet.Wallet, error) {
	im := &impl{
		client:  client,
		chainId: cfg.ChainId,
	}
	if len(cfg.PrivateKey) == 0 {
		return im, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		c.WithField("err", err).Error("crypto.HexToECDSA failed")
		return nil, err
	}
	im.key = key
	im.address = crypto.PubkeyToAddress(key.PublicKey)
	return im, nil
}

func (im *impl) IsConnected() bool {
	return im.key != nil
}

func (im *impl) Address() domain.Address {
	if im.key == nil {
		return domain.EmptyAddress
	}
	return domain.Address(im.address.Hex())
}

func (im *impl) SendTransfer(c bCtx.Ctx, token domain.Address, to domain.Address, amount *big.Int, chainId domain.ChainId) (domain.TxHash, error) {
	if !im.IsConnected() {
		return "", domain.ErrWalletNotConnected
	}
	if chainId != im.chainId {
		c.WithFields(log.Fields{
			"want": im.chainId,
			"got":  chainId,
		}).Error("chain id mismatch")
		return "", domain.ErrInvalidChainId
	}

	data, err := abi.ERC20TokenABI.Pack("transfer", common.HexToAddress(string(to)), amount)
	if err != nil {
		c.WithField("err", err).Error("abi.Pack failed")
		return "", err
	}

	tokenAddr := common.HexToAddress(string(token))

	nonce, err := im.client.PendingNonceAt(c, im.address)
	if err != nil {
		c.WithField("err", err).Error("client.PendingNonceAt failed")
		return "", err
	}

	gasPrice, err := im.client.SuggestGasPrice(c)
	if err != nil {
		c.WithField("err", err).Error("client.SuggestGasPrice failed")
		return "", err
	}

	gasLimit, err := im.client.EstimateGas(c, ethereum.CallMsg{
		From: im.address,
		To:   &tokenAddr,
		Data: data,
	})
	if err != nil {
		c.WithField("err", err).Warn("client.EstimateGas failed, using fallback limit")
		gasLimit = transferGasLimit
	}

	tx := types.NewTransaction(nonce, tokenAddr, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), im.key)
	if err != nil {
		c.WithField("err", err).Error("types.SignTx failed")
		return "", err
	}

	if err := im.client.SendTransaction(c, signed); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"txHash": signed.Hash().Hex(),
		}).Error("client.SendTransaction failed")
		return "", err
	}

	return domain.TxHash(signed.Hash().Hex()), nil
}
