package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type RollBackTester struct {
	acc0, acc1 *SandboxAccount
	admin      *SandboxAccount
}

func (tester *RollBackTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.admin = d.Account(constants.GenesisLicenseAdminAccount)

	t.Run("disabled by default", d.Test(tester.disabledByDefault))
	t.Run("nothing saved", d.Test(tester.nothingSaved))
	t.Run("restore", d.Test(tester.restore))
	t.Run("swap again", d.Test(tester.swapAgain))
	t.Run("admin only", d.Test(tester.adminOnly))
}

func (tester *RollBackTester) disabledByDefault(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	receipt := tester.admin.TrxReceipt(RollBackPublicKeys(tester.admin.Id(), tester.acc0.Id()))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "roll back disabled")
}

func (tester *RollBackTester) nothingSaved(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc1

	a.NoError(acc.SendTrx(SetRollBackEnabled(acc.Id(), true)))
	a.True(acc.Get().RollBackEnabled)

	// opted in, but the account never rotated its keys
	receipt := tester.admin.TrxReceipt(RollBackPublicKeys(tester.admin.Id(), acc.Id()))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "no saved keys")

	receipt = tester.admin.TrxReceipt(RollBackPublicKeys(tester.admin.Id(), 99999))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "not found")
}

func (tester *RollBackTester) restore(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc, admin := tester.acc0, tester.admin

	a.NoError(acc.SendTrx(SetRollBackEnabled(acc.Id(), true)))

	// someone holding the key rotates it away from the owner
	a.NoError(acc.SendTrx(ChangePublicKeys(acc.Id(), nil, keyAuth(d, "actor0-stolen"))))
	receipt := acc.TrxReceipt(SetRollBackEnabled(acc.Id(), false))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "authority")

	// the license administrator puts the saved pair back
	a.NoError(admin.SendTrx(RollBackPublicKeys(admin.Id(), acc.Id())))

	record := acc.Get()
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.True(record.SavedActive.KeyAuths[0].Key.Equal(d.KeyOf("actor0-stolen")))
	a.EqualValues(2, record.ActiveChangeCount)
	a.EqualValues(1, record.OwnerChangeCount)

	// and the original key drives the account again
	a.NoError(acc.SendTrx(SetRollBackEnabled(acc.Id(), true)))
}

func (tester *RollBackTester) swapAgain(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc, admin := tester.acc0, tester.admin

	// rolling back a roll back swaps the stolen key back in
	a.NoError(admin.SendTrx(RollBackPublicKeys(admin.Id(), acc.Id())))
	a.True(acc.Get().Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0-stolen")))

	a.NoError(admin.SendTrx(RollBackPublicKeys(admin.Id(), acc.Id())))
	record := acc.Get()
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.EqualValues(4, record.ActiveChangeCount)
	a.EqualValues(3, record.OwnerChangeCount)
}

func (tester *RollBackTester) adminOnly(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	receipt := tester.acc1.TrxReceipt(RollBackPublicKeys(tester.acc1.Id(), tester.acc0.Id()))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "license-administrator chain authority")
}
