package app

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/db/storage"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/stretchr/testify/assert"
)

func newTestController() (*Controller, storage.Database) {
	db := storage.NewMemDatabase()
	c := NewController(db, nil, EventBus.New())
	c.Open(nil)
	return c, db
}

func genesisKey(wif string) *prototype.PublicKeyType {
	key, err := prototype.PublicKeyFromWIF(wif)
	if err != nil {
		panic(err)
	}
	return key
}

func testPubKey(seed byte) *prototype.PublicKeyType {
	data := make([]byte, 33)
	data[0] = 0x2
	data[1] = seed
	return prototype.PublicKeyFromBytes(data)
}

// trxOf builds a signed transaction the way a wallet would, with a unique
// expiration per call so the duplicate guard never collides by accident.
var trxSeq uint32

func trxOf(c *Controller, signees []*prototype.PublicKeyType, ops ...prototype.BaseOperation) *prototype.SignedTransaction {
	trxSeq++
	trx := &prototype.Transaction{
		Expiration: c.HeadBlockTime() + 30 + prototype.TimePointSec(trxSeq),
	}
	for _, op := range ops {
		trx.AddOperation(op)
	}
	return &prototype.SignedTransaction{Trx: trx, Signees: signees}
}

func createOpFor(registrar, referrer prototype.AccountIdType, name string, key *prototype.PublicKeyType) *prototype.AccountCreateOperation {
	return &prototype.AccountCreateOperation{
		Kind:      prototype.KindWallet,
		Registrar: registrar,
		Referrer:  referrer,
		Name:      name,
		Owner:     *prototype.NewAuthorityFromPubKey(key),
		Active:    *prototype.NewAuthorityFromPubKey(key),
		Options:   prototype.AccountOptions{MemoKey: key},
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	a := assert.New(t)
	c, db := newTestController()

	props := c.GetProps()
	a.NotNil(props)
	a.EqualValues(constants.FirstAvailableAccountId+3, props.NextAccountId)

	c.Open(nil)
	a.EqualValues(props.NextAccountId, c.GetProps().NextAccountId)

	rootId, ok := table.AccountIdByName(db, constants.GenesisRootAccount)
	a.True(ok)
	a.EqualValues(constants.FirstAvailableAccountId, rootId)

	holder, ok := c.GetProps().ChainAuthorities[prototype.AuthorityRegistrar]
	a.True(ok)
	registrarId, _ := table.AccountIdByName(db, constants.GenesisRegistrarAccount)
	a.Equal(registrarId, holder)
}

func TestPushTrxAppliesAccountCreate(t *testing.T) {
	a := assert.New(t)
	c, db := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	registrarKey := genesisKey(constants.GenesisRegistrarPubKey)

	op := createOpFor(registrarId, registrarId, "alice", testPubKey(1))
	receipt := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{registrarKey}, op))
	a.True(receipt.IsSuccess(), receipt.ErrorInfo)
	a.Len(receipt.OpResults, 1)
	a.Equal("account_create", receipt.OpResults[0].OpType)

	id, ok := c.AccountIdByName("alice")
	a.True(ok)
	a.EqualValues(constants.FirstAvailableAccountId+3, id)

	record := table.NewAccountWrap(db, id).Get()
	a.NotNil(record)
	a.Equal(prototype.KindWallet, record.Kind)
	a.Equal(registrarId, record.Registrar)
	a.EqualValues(constants.DefaultStartingCycleAssetAmount, record.CycleBalance)
	a.EqualValues(id+1, c.GetProps().NextAccountId)
}

func TestPushTrxRejectsExpired(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	registrarKey := genesisKey(constants.GenesisRegistrarPubKey)

	trx := trxOf(c, []*prototype.PublicKeyType{registrarKey},
		createOpFor(registrarId, registrarId, "bob", testPubKey(2)))
	trx.Trx.Expiration = c.HeadBlockTime()

	receipt := c.PushTrx(trx)
	a.False(receipt.IsSuccess())
	a.Contains(receipt.ErrorInfo, "expired")
}

func TestPushTrxRejectsMissingAuthority(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)

	receipt := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{testPubKey(9)},
		createOpFor(registrarId, registrarId, "carol", testPubKey(3))))
	a.False(receipt.IsSuccess())
	a.Contains(receipt.ErrorInfo, "authority")
}

func TestPushTrxIsAtomic(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	registrarKey := genesisKey(constants.GenesisRegistrarPubKey)

	// the second create reuses the first name, so the whole trx must fail
	receipt := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{registrarKey},
		createOpFor(registrarId, registrarId, "dave", testPubKey(4)),
		createOpFor(registrarId, registrarId, "dave", testPubKey(5))))
	a.False(receipt.IsSuccess())
	a.Zero(receipt.FeePaid)

	_, ok := c.AccountIdByName("dave")
	a.False(ok)
	a.EqualValues(constants.FirstAvailableAccountId+3, c.GetProps().NextAccountId)
}

func TestPushTrxRejectsReplay(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	registrarKey := genesisKey(constants.GenesisRegistrarPubKey)

	trx := trxOf(c, []*prototype.PublicKeyType{registrarKey},
		createOpFor(registrarId, registrarId, "erin", testPubKey(6)))
	a.True(c.PushTrx(trx).IsSuccess())

	replay := c.PushTrx(trx)
	a.False(replay.IsSuccess())
	a.Contains(replay.ErrorInfo, "already applied")
}

func TestDeclaredFeeMustCoverSchedule(t *testing.T) {
	a := assert.New(t)
	c, db := newTestController()

	rootId, _ := c.AccountIdByName(constants.GenesisRootAccount)
	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	rootKey := genesisKey(constants.GenesisRootPubKey)

	list := &prototype.AccountWhitelistOperation{
		AuthorizingAccount: rootId,
		AccountToList:      registrarId,
		NewListing:         prototype.WhiteListed,
	}
	receipt := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{rootKey}, list))
	a.False(receipt.IsSuccess())
	a.Contains(receipt.ErrorInfo, "fee")

	before := table.NewAccountWrap(db, rootId).Get().Balance.Amount
	paid := &prototype.AccountWhitelistOperation{
		Fee:                *prototype.NewAsset(300000),
		AuthorizingAccount: rootId,
		AccountToList:      registrarId,
		NewListing:         prototype.WhiteListed,
	}
	receipt = c.PushTrx(trxOf(c, []*prototype.PublicKeyType{rootKey}, paid))
	a.True(receipt.IsSuccess(), receipt.ErrorInfo)
	a.EqualValues(300000, receipt.FeePaid)

	after := table.NewAccountWrap(db, rootId).Get().Balance.Amount
	a.EqualValues(before-300000, after)

	target := table.NewAccountWrap(db, registrarId).Get()
	a.Equal([]prototype.AccountIdType{rootId}, target.WhitelistingAccounts)
}

func TestAuthCacheFollowsKeyChange(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	registrarId, _ := c.AccountIdByName(constants.GenesisRegistrarAccount)
	registrarKey := genesisKey(constants.GenesisRegistrarPubKey)

	// warm the cache
	auth := c.fetcher.GetActive(registrarId)
	a.NotNil(auth)
	a.True(auth.KeyAuths[0].Key.Equal(registrarKey))

	newKey := testPubKey(7)
	change := &prototype.ChangePublicKeysOperation{
		Account: registrarId,
		Active:  prototype.NewAuthorityFromPubKey(newKey),
	}
	receipt := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{registrarKey}, change))
	a.True(receipt.IsSuccess(), receipt.ErrorInfo)

	auth = c.fetcher.GetActive(registrarId)
	a.NotNil(auth)
	a.True(auth.KeyAuths[0].Key.Equal(newKey))

	// the old key no longer satisfies the registrar's active authority
	failed := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{registrarKey},
		createOpFor(registrarId, registrarId, "frank", testPubKey(8))))
	a.False(failed.IsSuccess())

	ok := c.PushTrx(trxOf(c, []*prototype.PublicKeyType{newKey},
		createOpFor(registrarId, registrarId, "frank", testPubKey(8))))
	a.True(ok.IsSuccess(), ok.ErrorInfo)
}

func TestAdvanceHeadTimeOnlyMovesForward(t *testing.T) {
	a := assert.New(t)
	c, _ := newTestController()

	start := c.HeadBlockTime()
	c.AdvanceHeadTime(start + 100)
	a.EqualValues(start+100, c.HeadBlockTime())

	c.AdvanceHeadTime(start + 50)
	a.EqualValues(start+100, c.HeadBlockTime())
}
