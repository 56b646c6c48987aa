package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSignState(carried []*PublicKeyType, maxDepth uint32,
	actives, owners map[AccountIdType]*Authority) *SignState {
	s := &SignState{}
	s.Init(carried, maxDepth,
		func(id AccountIdType) *Authority { return actives[id] },
		func(id AccountIdType) *Authority { return owners[id] })
	return s
}

func TestSignStateThreshold(t *testing.T) {
	a := assert.New(t)

	k1, k2 := testPubKey(1), testPubKey(2)
	actives := map[AccountIdType]*Authority{
		8: {
			WeightThreshold: 2,
			KeyAuths:        []KeyAuth{{Key: k1, Weight: 1}, {Key: k2, Weight: 1}},
		},
	}

	s := testSignState([]*PublicKeyType{k1}, 2, actives, nil)
	a.False(s.CheckAuthorityByAccount(8, Active))

	s = testSignState([]*PublicKeyType{k1, k2}, 2, actives, nil)
	a.True(s.CheckAuthorityByAccount(8, Active))

	// repeated checks hit the approval cache
	a.True(s.CheckAuthorityByAccount(8, Active))
}

func TestSignStateRecursion(t *testing.T) {
	a := assert.New(t)

	k := testPubKey(7)
	actives := map[AccountIdType]*Authority{
		1: NewAuthorityFromAccount(2),
		2: NewAuthorityFromAccount(3),
		3: NewAuthorityFromPubKey(k),
	}

	s := testSignState([]*PublicKeyType{k}, 2, actives, nil)
	a.True(s.CheckAuthorityByAccount(1, Active))

	// one level short of reaching the key holder
	s = testSignState([]*PublicKeyType{k}, 1, actives, nil)
	a.False(s.CheckAuthorityByAccount(1, Active))

	s = testSignState([]*PublicKeyType{k}, 0, actives, nil)
	a.False(s.CheckAuthorityByAccount(1, Active))
	a.True(s.CheckAuthorityByAccount(3, Active))
}

func TestSignStateOwnerIsSeparate(t *testing.T) {
	a := assert.New(t)

	ownerKey, activeKey := testPubKey(1), testPubKey(2)
	owners := map[AccountIdType]*Authority{8: NewAuthorityFromPubKey(ownerKey)}
	actives := map[AccountIdType]*Authority{8: NewAuthorityFromPubKey(activeKey)}

	s := testSignState([]*PublicKeyType{activeKey}, 2, actives, owners)
	a.True(s.CheckAuthorityByAccount(8, Active))
	a.False(s.CheckAuthorityByAccount(8, Owner))

	s = testSignState([]*PublicKeyType{ownerKey}, 2, actives, owners)
	a.True(s.CheckAuthorityByAccount(8, Owner))
	a.False(s.CheckAuthorityByAccount(8, Active))
}

func TestSignStateUnknownAccount(t *testing.T) {
	a := assert.New(t)

	s := testSignState([]*PublicKeyType{testPubKey(1)}, 2, nil, nil)
	a.False(s.CheckAuthorityByAccount(99, Active))
}

func TestSignStateMixedWeights(t *testing.T) {
	a := assert.New(t)

	k := testPubKey(5)
	memberKey := testPubKey(6)
	actives := map[AccountIdType]*Authority{
		8: {
			WeightThreshold: 3,
			AccountAuths:    []AccountAuth{{Account: 2, Weight: 2}},
			KeyAuths:        []KeyAuth{{Key: k, Weight: 1}},
		},
		2: NewAuthorityFromPubKey(memberKey),
	}

	// key alone is a weight of 1, member alone a weight of 2
	s := testSignState([]*PublicKeyType{k}, 2, actives, nil)
	a.False(s.CheckAuthorityByAccount(8, Active))

	s = testSignState([]*PublicKeyType{memberKey}, 2, actives, nil)
	a.False(s.CheckAuthorityByAccount(8, Active))

	s = testSignState([]*PublicKeyType{k, memberKey}, 2, actives, nil)
	a.True(s.CheckAuthorityByAccount(8, Active))
}
