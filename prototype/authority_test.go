package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorityValidate(t *testing.T) {
	a := assert.New(t)

	auth := NewAuthorityFromPubKey(testPubKey(1))
	a.NoError(auth.Validate())
	a.Equal(1, auth.NumAuths())

	auth = NewAuthorityFromAccount(42)
	a.NoError(auth.Validate())

	auth = &Authority{WeightThreshold: 0, KeyAuths: []KeyAuth{{Key: testPubKey(1), Weight: 1}}}
	a.Equal(ErrZeroThreshold, auth.Validate())

	auth = &Authority{WeightThreshold: 1}
	a.Equal(ErrEmptyAuthority, auth.Validate())

	auth = &Authority{
		WeightThreshold: 1,
		KeyAuths:        []KeyAuth{{Key: PublicKeyFromBytes([]byte{0x2}), Weight: 1}},
	}
	a.Equal(ErrKeyLength, auth.Validate())
}

func TestSpecialAuthorityValidate(t *testing.T) {
	a := assert.New(t)

	sa := &SpecialAuthority{Type: SpecialNone}
	a.NoError(sa.Validate())

	sa = &SpecialAuthority{Type: SpecialTopHolders}
	a.Equal(ErrNpe, sa.Validate())

	sa.TopHolders = &TopHoldersSpecialAuthority{Asset: 1, NumTopHolders: 0}
	a.Error(sa.Validate())

	sa.TopHolders.NumTopHolders = 10
	a.NoError(sa.Validate())

	sa = &SpecialAuthority{Type: SpecialAuthorityType(9)}
	a.True(IsStructural(sa.Validate()))
}

func TestBuybackOptionsValidate(t *testing.T) {
	a := assert.New(t)

	bbo := &BuybackAccountOptions{AssetToBuy: 2, AssetToBuyIssuer: 5, Markets: []AssetIdType{1, 3}}
	a.NoError(bbo.Validate())

	bbo.Markets = append(bbo.Markets, 2)
	a.True(IsStructural(bbo.Validate()))
}
