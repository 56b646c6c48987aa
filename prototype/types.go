package prototype

import (
	"fmt"
	"math"

	"github.com/dascoin/dascoin-go/common/constants"
)

// AccountIdType identifies an account. Ids are assigned in registration
// order and never reused, so they are totally ordered.
type AccountIdType uint64

// AssetIdType identifies an asset known to the chain.
type AssetIdType uint64

// TimePointSec is a unix timestamp with second resolution.
type TimePointSec uint32

const (
	NullAccountId        = AccountIdType(constants.NullAccountId)
	TempAccountId        = AccountIdType(constants.TempAccountId)
	ProxyToSelfAccountId = AccountIdType(constants.ProxyToSelfAccountId)
)

// AccountKind partitions accounts by custody model. Vaults hold licensed
// funds and may be tethered to wallets; custodian accounts hold funds on
// behalf of third parties.
type AccountKind uint8

const (
	KindWallet AccountKind = iota
	KindVault
	KindCustodian
	KindSpecial
)

func (k AccountKind) Valid() bool {
	return k <= KindSpecial
}

func (k AccountKind) String() string {
	switch k {
	case KindWallet:
		return "wallet"
	case KindVault:
		return "vault"
	case KindCustodian:
		return "custodian"
	case KindSpecial:
		return "special"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// VoteIdType packs a vote target: the low byte holds the vote type, the
// upper 24 bits the instance number.
type VoteIdType uint32

type VoteType uint8

const (
	VoteCommittee VoteType = iota
	VoteWitness
	VoteWorker
)

func NewVoteId(t VoteType, instance uint32) VoteIdType {
	return VoteIdType(uint32(t) | instance<<8)
}

func (v VoteIdType) Type() VoteType {
	return VoteType(v & 0xff)
}

func (v VoteIdType) Instance() uint32 {
	return uint32(v) >> 8
}

// Asset is an amount of some chain asset, counted in satoshis of that asset.
type Asset struct {
	Amount  int64       `json:"amount"`
	AssetId AssetIdType `json:"asset_id"`
}

// NewAsset makes a core-asset amount.
func NewAsset(amount int64) *Asset {
	return &Asset{Amount: amount, AssetId: constants.CoreAssetId}
}

func (m *Asset) Add(o *Asset) error {
	if m.AssetId != o.AssetId {
		return ErrAssetMismatch
	}
	if o.Amount > 0 && m.Amount > math.MaxInt64-o.Amount {
		return ErrAssetOverflow
	}
	if o.Amount < 0 && m.Amount < math.MinInt64-o.Amount {
		return ErrAssetOverflow
	}
	m.Amount += o.Amount
	return nil
}

// Sub treats m as a balance: it fails instead of going negative.
func (m *Asset) Sub(o *Asset) error {
	if m.AssetId != o.AssetId {
		return ErrAssetMismatch
	}
	if m.Amount < o.Amount {
		return ErrInsufficientBalance
	}
	m.Amount -= o.Amount
	return nil
}

// String renders the amount in whole-coin units. Only the core asset has a
// symbol; other assets print by id.
func (m Asset) String() string {
	amount, sign := m.Amount, ""
	if amount < 0 {
		sign, amount = "-", -amount
	}
	s := fmt.Sprintf("%s%d.%05d", sign, amount/constants.AssetPrecision, amount%constants.AssetPrecision)
	if m.AssetId == constants.CoreAssetId {
		return s + " " + constants.CoinSymbol
	}
	return fmt.Sprintf("%s asset(%d)", s, uint64(m.AssetId))
}

// validateFee is the baseline structural check every operation runs on its
// fee field.
func (m *Asset) validateFee() error {
	if m == nil {
		return ErrNpe
	}
	if m.Amount < 0 {
		return ErrNegativeFee
	}
	return nil
}
