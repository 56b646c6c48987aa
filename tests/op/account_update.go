package op

import (
	"fmt"
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type AccountUpdateTester struct {
	acc0, acc1, acc2 *SandboxAccount
}

func (tester *AccountUpdateTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.acc2 = d.Account("actor2")

	t.Run("active rotation", d.Test(tester.rotateActive))
	t.Run("owner change needs owner authority", d.Test(tester.ownerNeedsOwner))
	t.Run("options update", d.Test(tester.optionsUpdate))
	t.Run("special authority slot", d.Test(tester.specialAuthority))
	t.Run("fee grows with size", d.Test(tester.feeGrowsWithSize))
	t.Run("empty update rejected", d.Test(tester.emptyUpdate))
}

func (tester *AccountUpdateTester) rotateActive(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0
	balance := acc.GetBalance()

	newAuth := keyAuth(d, "actor0-active")
	fee := feeOf(d, AccountUpdate(acc.Id(), nil, newAuth, nil, 0))
	a.NoError(acc.SendTrx(AccountUpdate(acc.Id(), nil, newAuth, nil, fee)))
	a.EqualValues(balance-fee, acc.GetBalance())

	record := acc.Get()
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor0-active")))
	a.True(record.SavedActive.KeyAuths[0].Key.Equal(d.KeyOf("actor0")))
	a.EqualValues(1, record.ActiveChangeCount)
	a.EqualValues(0, record.OwnerChangeCount)

	// the replaced key no longer satisfies the active authority
	receipt := acc.TrxReceipt(SetRollBackEnabled(acc.Id(), true))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "authority")

	// the new key does
	receipt, err := d.SendTrxByAccounts([]string{"actor0-active"}, SetRollBackEnabled(acc.Id(), true))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)
}

func (tester *AccountUpdateTester) ownerNeedsOwner(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc1

	ownerAuth := keyAuth(d, "actor1-owner")
	fee := feeOf(d, AccountUpdate(acc.Id(), ownerAuth, nil, nil, 0))
	a.NoError(acc.SendTrx(AccountUpdate(acc.Id(), ownerAuth, nil, nil, fee)))
	record := acc.Get()
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor1-owner")))
	a.EqualValues(1, record.OwnerChangeCount)

	// the account key still drives active operations, but active cannot
	// change owner
	again := keyAuth(d, "actor1-owner2")
	fee = feeOf(d, AccountUpdate(acc.Id(), again, nil, nil, 0))
	receipt := acc.TrxReceipt(AccountUpdate(acc.Id(), again, nil, nil, fee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "owner of account")

	receipt, err := d.SendTrxByAccounts([]string{"actor1-owner"}, AccountUpdate(acc.Id(), again, nil, nil, fee))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)
	a.EqualValues(2, acc.Get().OwnerChangeCount)
}

func (tester *AccountUpdateTester) optionsUpdate(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2

	opts := &prototype.AccountOptions{
		MemoKey:       d.KeyOf("actor2-memo"),
		VotingAccount: tester.acc0.Id(),
	}
	fee := feeOf(d, AccountUpdate(acc.Id(), nil, nil, opts, 0))
	a.NoError(acc.SendTrx(AccountUpdate(acc.Id(), nil, nil, opts, fee)))

	record := acc.Get()
	a.True(record.Options.MemoKey.Equal(d.KeyOf("actor2-memo")))
	a.Equal(tester.acc0.Id(), record.Options.VotingAccount)

	// keys untouched by an options-only update
	a.EqualValues(0, record.ActiveChangeCount)
	a.EqualValues(0, record.OwnerChangeCount)
}

func (tester *AccountUpdateTester) specialAuthority(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2

	op := &prototype.AccountUpdateOperation{
		Account: acc.Id(),
		Extensions: prototype.AccountUpdateExtensions{
			ActiveSpecialAuthority: &prototype.SpecialAuthority{
				Type: prototype.SpecialTopHolders,
				TopHolders: &prototype.TopHoldersSpecialAuthority{
					Asset:         1,
					NumTopHolders: 10,
				},
			},
		},
	}
	op.Fee = *prototype.NewAsset(feeOf(d, prototype.WrapOperation(op)))
	a.NoError(acc.SendTrx(prototype.WrapOperation(op)))

	special := acc.Get().ActiveSpecial
	a.NotNil(special)
	a.Equal(prototype.SpecialTopHolders, special.Type)
	a.EqualValues(10, special.TopHolders.NumTopHolders)
}

func (tester *AccountUpdateTester) feeGrowsWithSize(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2

	// a fat authority pushes the packed operation over one kibibyte; the
	// account's own key stays in so later subtests keep control
	keyAuths := []prototype.KeyAuth{{Key: d.KeyOf("actor2"), Weight: 1}}
	for i := 0; i < 29; i++ {
		keyAuths = append(keyAuths, prototype.KeyAuth{Key: d.KeyOf(fmt.Sprintf("fat%d", i)), Weight: 1})
	}
	fat := &prototype.Authority{WeightThreshold: 1, KeyAuths: keyAuths}

	required := feeOf(d, AccountUpdate(acc.Id(), nil, fat, nil, 22*constants.AssetPrecision))
	a.EqualValues(22*constants.AssetPrecision, required)

	balance := acc.GetBalance()
	receipt := acc.TrxReceipt(AccountUpdate(acc.Id(), nil, fat, nil, required-1))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "fee offer below the schedule")
	a.EqualValues(0, receipt.FeePaid)
	a.EqualValues(balance, acc.GetBalance())

	a.NoError(acc.SendTrx(AccountUpdate(acc.Id(), nil, fat, nil, required)))
	a.EqualValues(balance-required, acc.GetBalance())
	a.Equal(30, acc.Get().Active.NumAuths())
}

func (tester *AccountUpdateTester) emptyUpdate(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	receipt := tester.acc0.TrxReceipt(
		AccountUpdate(tester.acc0.Id(), nil, nil, nil, 21*constants.AssetPrecision))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "changes nothing")
}
