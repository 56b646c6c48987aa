package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type ChangeKeysTester struct {
	acc0, acc1 *SandboxAccount
}

func (tester *ChangeKeysTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")

	t.Run("active rotation", d.Test(tester.activeRotation))
	t.Run("owner rotation", d.Test(tester.ownerRotation))
	t.Run("both at once", d.Test(tester.bothAtOnce))
}

func (tester *ChangeKeysTester) activeRotation(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0
	balance := acc.GetBalance()

	a.NoError(acc.SendTrx(ChangePublicKeys(acc.Id(), nil, keyAuth(d, "actor0-rot1"))))

	record := acc.Get()
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0-rot1")))
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))

	// the whole pre-change pair is saved, not just the rotated half
	a.True(record.SavedActive.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.True(record.SavedOwner.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.EqualValues(1, record.ActiveChangeCount)
	a.EqualValues(0, record.OwnerChangeCount)

	// rotations are free
	a.EqualValues(balance, acc.GetBalance())
}

func (tester *ChangeKeysTester) ownerRotation(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc1

	a.NoError(acc.SendTrx(ChangePublicKeys(acc.Id(), keyAuth(d, "actor1-own1"), nil)))

	record := acc.Get()
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor1-own1")))
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor1")))
	a.EqualValues(1, record.OwnerChangeCount)
	a.EqualValues(0, record.ActiveChangeCount)

	// the base key keeps driving active-level operations
	a.NoError(acc.SendTrx(SetRollBackEnabled(acc.Id(), true)))

	// but it no longer speaks for the owner authority
	receipt := acc.TrxReceipt(ChangePublicKeys(acc.Id(), keyAuth(d, "actor1-own2"), nil))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "owner of account")
	a.EqualValues(1, acc.Get().OwnerChangeCount)

	receipt, err := d.SendTrxByAccounts([]string{"actor1-own1"},
		ChangePublicKeys(acc.Id(), keyAuth(d, "actor1-own2"), nil))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)
	a.EqualValues(2, acc.Get().OwnerChangeCount)
}

func (tester *ChangeKeysTester) bothAtOnce(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0

	// actor0's owner is still the base key after the active rotation
	a.NoError(acc.SendTrx(
		ChangePublicKeys(acc.Id(), keyAuth(d, "actor0-own2"), keyAuth(d, "actor0-act2"))))

	record := acc.Get()
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor0-own2")))
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0-act2")))
	a.True(record.SavedOwner.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.True(record.SavedActive.KeyAuths[0].Key.Equal(d.KeyOf("actor0-rot1")))
	a.EqualValues(1, record.OwnerChangeCount)
	a.EqualValues(2, record.ActiveChangeCount)
}
