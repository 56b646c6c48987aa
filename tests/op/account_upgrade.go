package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type UpgradeTester struct {
	acc0, acc1, acc2 *SandboxAccount
	registrar, root  *SandboxAccount
}

func (tester *UpgradeTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.acc2 = d.Account("actor2")
	tester.registrar = d.Account(constants.GenesisRegistrarAccount)
	tester.root = d.Account(constants.GenesisRootAccount)

	t.Run("annual", d.Test(tester.annual))
	t.Run("annual stacks", d.Test(tester.annualStacks))
	t.Run("membership lapses", d.Test(tester.membershipLapses))
	t.Run("lifetime", d.Test(tester.lifetime))
	t.Run("lifetime is final", d.Test(tester.lifetimeFinal))
	t.Run("fee must match the tier", d.Test(tester.feeTier))
	t.Run("balance must cover the offer", d.Test(tester.poorPayer))
}

func (tester *UpgradeTester) annual(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0
	now := d.Controller().HeadBlockTime()

	fee := feeOf(d, AccountUpgrade(acc.Id(), false, 0))
	a.EqualValues(2000*constants.AssetPrecision, fee)

	balance := acc.GetBalance()
	a.False(acc.Get().IsMember(now))
	a.NoError(acc.SendTrx(AccountUpgrade(acc.Id(), false, fee)))

	record := acc.Get()
	a.False(record.LifetimeMember)
	a.EqualValues(now+constants.MembershipAnnualSeconds, record.MembershipExpiration)
	a.True(record.IsMember(now))
	a.EqualValues(balance-fee, acc.GetBalance())
}

func (tester *UpgradeTester) annualStacks(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0

	expiration := acc.Get().MembershipExpiration
	a.True(expiration > d.Controller().HeadBlockTime())

	// a second year counts from the end of the first, not from today
	fee := feeOf(d, AccountUpgrade(acc.Id(), false, 0))
	a.NoError(acc.SendTrx(AccountUpgrade(acc.Id(), false, fee)))
	a.EqualValues(expiration+constants.MembershipAnnualSeconds, acc.Get().MembershipExpiration)
}

func (tester *UpgradeTester) membershipLapses(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0

	d.Advance(2*constants.MembershipAnnualSeconds + 10)
	now := d.Controller().HeadBlockTime()
	a.False(acc.Get().IsMember(now))

	// a lapsed member cannot refer new accounts
	receipt := tester.registrar.TrxReceipt(AccountCreate(
		tester.registrar.Id(), acc.Id(), prototype.KindWallet, "latecomer", d.KeyOf("latecomer")))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "member")

	// renewing after the lapse counts from today
	fee := feeOf(d, AccountUpgrade(acc.Id(), false, 0))
	a.NoError(acc.SendTrx(AccountUpgrade(acc.Id(), false, fee)))
	a.EqualValues(now+constants.MembershipAnnualSeconds, acc.Get().MembershipExpiration)
}

func (tester *UpgradeTester) lifetime(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc1

	fee := feeOf(d, AccountUpgrade(acc.Id(), true, 0))
	a.EqualValues(10000*constants.AssetPrecision, fee)

	balance := acc.GetBalance()
	a.NoError(acc.SendTrx(AccountUpgrade(acc.Id(), true, fee)))

	record := acc.Get()
	a.True(record.LifetimeMember)
	a.True(record.IsMember(d.Controller().HeadBlockTime()))
	a.EqualValues(balance-fee, acc.GetBalance())
}

func (tester *UpgradeTester) lifetimeFinal(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc1
	balance := acc.GetBalance()

	for _, lifetime := range []bool{false, true} {
		fee := feeOf(d, AccountUpgrade(acc.Id(), lifetime, 0))
		receipt := acc.TrxReceipt(AccountUpgrade(acc.Id(), lifetime, fee))
		a.EqualValues(prototype.StatusFailed, receipt.Status)
		a.Contains(receipt.ErrorInfo, "already a lifetime member")

		// the charged fee comes back when the transaction fails
		a.EqualValues(0, receipt.FeePaid)
		a.EqualValues(balance, acc.GetBalance())
	}
}

func (tester *UpgradeTester) feeTier(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2

	// the annual price does not buy a lifetime membership
	annualFee := feeOf(d, AccountUpgrade(acc.Id(), false, 0))
	receipt := acc.TrxReceipt(AccountUpgrade(acc.Id(), true, annualFee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "fee offer below the schedule")

	// nor does the right amount in the wrong asset
	op := &prototype.AccountUpgradeOperation{
		Fee:              prototype.Asset{Amount: 10000 * constants.AssetPrecision, AssetId: 1},
		AccountToUpgrade: acc.Id(),
	}
	receipt = acc.TrxReceipt(prototype.WrapOperation(op))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "wrong asset")
	a.False(acc.Get().LifetimeMember)
}

func (tester *UpgradeTester) poorPayer(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2

	// overpaying is allowed, but only up to the account balance
	balance := acc.GetBalance()
	receipt := acc.TrxReceipt(AccountUpgrade(acc.Id(), false, balance+1))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "insufficient balance")
	a.EqualValues(balance, acc.GetBalance())
	a.False(acc.Get().IsMember(d.Controller().HeadBlockTime()))
}
