package wallet

import (
	"math/big"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/domain"
)

// Wallet is the narrow capability the payment pipeline needs from a
// connected wallet. A returned tx hash only means the transfer was
// dispatched, not that it is final.
type Wallet interface {
	IsConnected() bool
	Address() domain.Address
	SendTransfer(c ctx.Ctx, token domain.Address, to domain.Address, amount *big.Int, chainId domain.ChainId) (domain.TxHash, error)
}
