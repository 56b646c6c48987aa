package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTrx(ops ...BaseOperation) *Transaction {
	trx := &Transaction{
		RefBlockNum:    100,
		RefBlockPrefix: 0xdeadbeef,
		Expiration:     TimePointSec(1500000000),
	}
	for _, op := range ops {
		trx.AddOperation(op)
	}
	return trx
}

func TestTransactionValidate(t *testing.T) {
	a := assert.New(t)

	trx := &Transaction{}
	a.Error(trx.Validate())

	trx.Expiration = TimePointSec(1500000000)
	a.Error(trx.Validate())

	trx.AddOperation(testCreateOp())
	a.NoError(trx.Validate())

	bad := testCreateOp()
	bad.ReferrerPercent = 20000
	trx.AddOperation(bad)
	err := trx.Validate()
	a.Error(err)
	a.Contains(err.Error(), "operation 1")
	a.True(IsStructural(err))
}

func TestTransactionAggregatesRequirements(t *testing.T) {
	a := assert.New(t)

	create := testCreateOp()
	create.Extensions.BuybackOptions = &BuybackAccountOptions{AssetToBuy: 2, AssetToBuyIssuer: 33}
	ownerUpdate := &AccountUpdateOperation{
		Fee:     *NewAsset(1),
		Account: 8,
		Owner:   NewAuthorityFromPubKey(testPubKey(1)),
	}
	trx := testTrx(create, ownerUpdate)

	active := make(map[AccountIdType]bool)
	owner := make(map[AccountIdType]bool)
	trx.GetRequiredAuthorities(&active, &owner)

	a.Equal(map[AccountIdType]bool{17: true, 33: true}, active)
	a.Equal(map[AccountIdType]bool{8: true}, owner)
}

func TestTransactionWireRoundTrip(t *testing.T) {
	a := assert.New(t)

	trx := testTrx(
		testCreateOp(),
		&TetherAccountsOperation{Fee: *NewAsset(0), WalletAccount: 10, VaultAccount: 11},
	)

	got, err := UnpackTransaction(trx.Pack())
	a.NoError(err)
	a.Equal(trx, got)

	_, err = UnpackTransaction(append(trx.Pack(), 0x7f))
	a.Error(err)

	_, err = UnpackTransaction(trx.Pack()[:10])
	a.Error(err)
}

func TestSignedTransactionValidate(t *testing.T) {
	a := assert.New(t)

	st := &SignedTransaction{Trx: testTrx(testCreateOp())}
	a.Error(st.Validate())

	st.Signees = []*PublicKeyType{testPubKey(1)}
	a.NoError(st.Validate())

	st.Signees = []*PublicKeyType{PublicKeyFromBytes([]byte{0x2})}
	a.Equal(ErrKeyLength, st.Validate())
}

func TestSignedTransactionDigest(t *testing.T) {
	a := assert.New(t)

	st := &SignedTransaction{Trx: testTrx(testCreateOp()), Signees: []*PublicKeyType{testPubKey(1)}}
	d1 := st.Digest()
	a.Len(d1, 32)
	a.Equal(d1, st.Digest())

	// the digest covers the payload, not the signees
	st.Signees = []*PublicKeyType{testPubKey(2)}
	a.Equal(d1, st.Digest())

	other := &SignedTransaction{Trx: testTrx(testCreateOp())}
	other.Trx.Expiration++
	a.NotEqual(d1, other.Digest())
}

func TestVerifyAuthority(t *testing.T) {
	a := assert.New(t)

	ownerKey, activeKey := testPubKey(1), testPubKey(2)
	owners := map[AccountIdType]*Authority{8: NewAuthorityFromPubKey(ownerKey)}
	actives := map[AccountIdType]*Authority{8: NewAuthorityFromPubKey(activeKey)}
	activeGetter := func(id AccountIdType) *Authority { return actives[id] }
	ownerGetter := func(id AccountIdType) *Authority { return owners[id] }

	ownerUpdate := &AccountUpdateOperation{
		Fee:     *NewAsset(1),
		Account: 8,
		Owner:   NewAuthorityFromPubKey(testPubKey(3)),
	}
	st := &SignedTransaction{Trx: testTrx(ownerUpdate), Signees: []*PublicKeyType{activeKey}}
	err := st.VerifyAuthority(2, activeGetter, ownerGetter)
	a.Error(err)
	a.True(IsStateConflict(err))
	a.Contains(err.Error(), "owner")

	st.Signees = []*PublicKeyType{ownerKey}
	a.NoError(st.VerifyAuthority(2, activeGetter, ownerGetter))

	optionUpdate := &AccountUpdateOperation{
		Fee:        *NewAsset(1),
		Account:    8,
		NewOptions: &AccountOptions{VotingAccount: ProxyToSelfAccountId},
	}
	st = &SignedTransaction{Trx: testTrx(optionUpdate), Signees: []*PublicKeyType{activeKey}}
	a.NoError(st.VerifyAuthority(2, activeGetter, ownerGetter))
}
