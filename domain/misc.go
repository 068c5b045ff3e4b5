package domain

import (
	"math/big"
	"strconv"
	"strings"
)

var (
	Big1  = big.NewInt(1)
	Big10 = big.NewInt(10)
)

type ChainId int32

// ChainIdArbitrumSepolia is the only chain the platform settles on today.
const ChainIdArbitrumSepolia = ChainId(421614)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TxHash string

func (h TxHash) String() string {
	return string(h)
}

func (h TxHash) ToLower() TxHash {
	return TxHash(strings.ToLower(string(h)))
}

type AssetId int64

func (i AssetId) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func ParseAssetId(s string) (AssetId, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidNumberFormat
	}
	return AssetId(v), nil
}

type CreatorId int64

func (i CreatorId) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func ParseCreatorId(s string) (CreatorId, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidNumberFormat
	}
	return CreatorId(v), nil
}
