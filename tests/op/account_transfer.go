package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type AccountTransferTester struct {
	acc0, acc1, acc2 *SandboxAccount
	root             *SandboxAccount
}

func (tester *AccountTransferTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.acc2 = d.Account("actor2")
	tester.root = d.Account(constants.GenesisRootAccount)

	t.Run("new owner takes over", d.Test(tester.adoptsAuthorities))
	t.Run("listings", d.Test(tester.listings))
	t.Run("unknown new owner", d.Test(tester.unknownNewOwner))
}

func (tester *AccountTransferTester) adoptsAuthorities(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc, heir := tester.acc0, tester.acc1

	fee := feeOf(d, AccountTransfer(acc.Id(), heir.Id(), 0))
	a.EqualValues(500*constants.AssetPrecision, fee)

	balance := acc.GetBalance()
	a.NoError(acc.SendTrx(AccountTransfer(acc.Id(), heir.Id(), fee)))

	record := acc.Get()
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor1")))
	a.True(record.Active.KeyAuths[0].Key.Equal(d.KeyOf("actor1")))
	a.EqualValues(balance-fee, acc.GetBalance())

	// the surrendered key no longer moves the account
	receipt := acc.TrxReceipt(SetRollBackEnabled(acc.Id(), true))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "authority")
	a.False(acc.Get().RollBackEnabled)

	// the heir's key does
	receipt, err := d.SendTrxByAccounts([]string{"actor1"}, SetRollBackEnabled(acc.Id(), true))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)
	a.True(acc.Get().RollBackEnabled)
}

func (tester *AccountTransferTester) listings(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc, heir := tester.acc1, tester.acc2

	// root is a lifetime member from genesis, so its opinions count
	listFee := feeOf(d, AccountWhitelist(tester.root.Id(), acc.Id(), prototype.WhiteAndBlackListed, 0))
	a.NoError(tester.root.SendTrx(
		AccountWhitelist(tester.root.Id(), acc.Id(), prototype.WhiteAndBlackListed, listFee)))

	record := acc.Get()
	a.Equal([]prototype.AccountIdType{tester.root.Id()}, record.WhitelistingAccounts)
	a.Equal([]prototype.AccountIdType{tester.root.Id()}, record.BlacklistingAccounts)

	fee := feeOf(d, AccountTransfer(acc.Id(), heir.Id(), 0))
	a.NoError(acc.SendTrx(AccountTransfer(acc.Id(), heir.Id(), fee)))

	// the handover wipes whitelist opinions while blacklist ones stick
	record = acc.Get()
	a.Empty(record.WhitelistingAccounts)
	a.Equal([]prototype.AccountIdType{tester.root.Id()}, record.BlacklistingAccounts)
}

func (tester *AccountTransferTester) unknownNewOwner(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc2
	balance := acc.GetBalance()

	fee := feeOf(d, AccountTransfer(acc.Id(), 99999, 0))
	receipt := acc.TrxReceipt(AccountTransfer(acc.Id(), 99999, fee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "new owner account not found")
	a.EqualValues(0, receipt.FeePaid)
	a.EqualValues(balance, acc.GetBalance())
	a.True(acc.Get().Owner.KeyAuths[0].Key.Equal(d.KeyOf("actor2")))
}
