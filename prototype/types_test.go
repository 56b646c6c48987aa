package prototype

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetAdd(t *testing.T) {
	a := assert.New(t)

	v := NewAsset(100)
	a.NoError(v.Add(NewAsset(20)))
	a.Equal(int64(120), v.Amount)

	v = NewAsset(math.MaxInt64 - 10)
	a.Equal(ErrAssetOverflow, v.Add(NewAsset(11)))
	a.NoError(v.Add(NewAsset(10)))
	a.Equal(int64(math.MaxInt64), v.Amount)

	other := &Asset{Amount: 1, AssetId: 7}
	a.Equal(ErrAssetMismatch, NewAsset(1).Add(other))
}

func TestAssetSubIsBalance(t *testing.T) {
	a := assert.New(t)

	v := NewAsset(100)
	a.NoError(v.Sub(NewAsset(100)))
	a.Equal(int64(0), v.Amount)

	a.Equal(ErrInsufficientBalance, v.Sub(NewAsset(1)))
	a.True(IsStateConflict(v.Sub(NewAsset(1))))
}

func TestVoteId(t *testing.T) {
	a := assert.New(t)

	v := NewVoteId(VoteWitness, 42)
	a.Equal(VoteWitness, v.Type())
	a.Equal(uint32(42), v.Instance())

	v = NewVoteId(VoteCommittee, 0)
	a.Equal(VoteCommittee, v.Type())
	a.Equal(uint32(0), v.Instance())
}

func TestAccountKind(t *testing.T) {
	a := assert.New(t)

	a.True(KindWallet.Valid())
	a.True(KindSpecial.Valid())
	a.False(AccountKind(4).Valid())

	a.Equal("vault", KindVault.String())
	a.Equal("custodian", KindCustodian.String())
}
