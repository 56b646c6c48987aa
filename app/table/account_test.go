package table

import (
	"testing"

	"github.com/dascoin/dascoin-go/db/storage"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/stretchr/testify/assert"
)

func testKey(seed byte) *prototype.PublicKeyType {
	data := make([]byte, 33)
	data[0] = 0x2
	data[32] = seed
	return prototype.PublicKeyFromBytes(data)
}

func TestAccountWrapCreateGetModify(t *testing.T) {
	a := assert.New(t)
	db := storage.NewMemDatabase()

	w := NewAccountWrap(db, 6)
	a.False(w.CheckExist())
	a.Nil(w.Get())

	a.NoError(w.Create(func(r *AccountRecord) {
		r.Name = "alice"
		r.Kind = prototype.KindWallet
		r.Owner = prototype.NewAuthorityFromPubKey(testKey(1))
		r.Active = prototype.NewAuthorityFromPubKey(testKey(2))
		r.Balance = *prototype.NewAsset(1000)
	}))
	a.True(w.CheckExist())
	a.Equal(ErrRecordExists, w.Create(func(r *AccountRecord) { r.Name = "alice" }))

	r := w.Get()
	a.NotNil(r)
	a.Equal("alice", r.Name)
	a.Equal(prototype.AccountIdType(6), r.Id)
	a.Equal(int64(1000), r.Balance.Amount)
	a.Equal(testKey(1).Data, r.Owner.KeyAuths[0].Key.Data)

	a.NoError(w.Modify(func(r *AccountRecord) {
		r.LifetimeMember = true
		r.CycleBalance = 100
	}))
	r = w.Get()
	a.True(r.LifetimeMember)
	a.Equal(uint64(100), r.CycleBalance)

	a.Error(w.Modify(func(r *AccountRecord) { r.Name = "bob" }))

	id, ok := AccountIdByName(db, "alice")
	a.True(ok)
	a.Equal(prototype.AccountIdType(6), id)
	_, ok = AccountIdByName(db, "bob")
	a.False(ok)
}

func TestAccountWrapRejectsDuplicateName(t *testing.T) {
	a := assert.New(t)
	db := storage.NewMemDatabase()

	a.NoError(NewAccountWrap(db, 6).Create(func(r *AccountRecord) { r.Name = "alice" }))
	a.Error(NewAccountWrap(db, 7).Create(func(r *AccountRecord) { r.Name = "alice" }))
}

func TestEachAccountWalksInIdOrder(t *testing.T) {
	a := assert.New(t)
	db := storage.NewMemDatabase()

	names := map[prototype.AccountIdType]string{8: "carol", 6: "alice", 7: "bob"}
	for id, name := range names {
		n := name
		a.NoError(NewAccountWrap(db, id).Create(func(r *AccountRecord) { r.Name = n }))
	}

	var walked []string
	EachAccount(db, func(r *AccountRecord) bool {
		walked = append(walked, r.Name)
		return true
	})
	a.Equal([]string{"alice", "bob", "carol"}, walked)
}

func TestGlobalWrap(t *testing.T) {
	a := assert.New(t)
	db := storage.NewMemDatabase()

	w := NewGlobalWrap(db)
	a.False(w.CheckExist())
	a.Nil(w.Get())
	a.Error(w.Modify(func(p *GlobalProperties) {}))

	a.NoError(w.Create(func(p *GlobalProperties) {
		p.NextAccountId = 6
		p.StartingCycleAssetAmount = 100
		p.ChainAuthorities["root"] = 6
	}))
	a.Equal(ErrRecordExists, w.Create(func(p *GlobalProperties) {}))

	a.NoError(w.Modify(func(p *GlobalProperties) {
		p.NextAccountId++
		p.ChainAuthorities["registrar"] = 7
	}))

	props := w.Get()
	a.Equal(prototype.AccountIdType(7), props.NextAccountId)

	id, ok := w.ChainAuthority("registrar")
	a.True(ok)
	a.Equal(prototype.AccountIdType(7), id)
	_, ok = w.ChainAuthority("license-administrator")
	a.False(ok)
}

func TestNameCache(t *testing.T) {
	a := assert.New(t)
	db := storage.NewMemDatabase()
	c := NewNameCache()

	_, ok := c.Lookup(db, "alice")
	a.False(ok)
	a.Equal(0, c.Len())

	a.NoError(NewAccountWrap(db, 6).Create(func(r *AccountRecord) { r.Name = "alice" }))

	id, ok := c.Lookup(db, "alice")
	a.True(ok)
	a.Equal(prototype.AccountIdType(6), id)
	a.Equal(1, c.Len())

	// cached entries answer without the index
	a.NoError(db.Delete([]byte("accountname:alice")))
	id, ok = c.Lookup(db, "alice")
	a.True(ok)
	a.Equal(prototype.AccountIdType(6), id)

	c.Seed("bob", 7)
	id, ok = c.Lookup(db, "bob")
	a.True(ok)
	a.Equal(prototype.AccountIdType(7), id)
}

func TestIdSetRoundTrip(t *testing.T) {
	a := assert.New(t)

	s := IdSet([]prototype.AccountIdType{9, 7, 7, 8})
	a.Equal(3, s.Cardinality())
	a.True(s.Contains(prototype.AccountIdType(7)))

	s.Remove(prototype.AccountIdType(8))
	s.Add(prototype.AccountIdType(5))
	a.Equal([]prototype.AccountIdType{5, 7, 9}, SetIds(s))

	a.Nil(SetIds(IdSet(nil)))
}

func TestRecordMembership(t *testing.T) {
	a := assert.New(t)

	r := &AccountRecord{}
	a.False(r.IsMember(1000))

	r.MembershipExpiration = 2000
	a.True(r.IsMember(1000))
	a.False(r.IsMember(2000))

	r.MembershipExpiration = 0
	r.LifetimeMember = true
	a.True(r.IsMember(1000))
}
