package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type WhitelistTester struct {
	acc0, acc1, acc2 *SandboxAccount
}

func (tester *WhitelistTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.acc2 = d.Account("actor2")

	t.Run("authorizer must be lifetime member", d.Test(tester.needsLifetime))
	t.Run("opinion transitions", d.Test(tester.transitions))
	t.Run("opinions per authorizer", d.Test(tester.twoAuthorizers))
	t.Run("unknown target", d.Test(tester.unknownTarget))
	t.Run("listing bitmask bounds", d.Test(tester.listingBounds))
}

func (tester *WhitelistTester) needsLifetime(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	fee := feeOf(d, AccountWhitelist(tester.acc0.Id(), tester.acc1.Id(), prototype.WhiteListed, 0))
	a.EqualValues(300000, fee)

	receipt := tester.acc0.TrxReceipt(
		AccountWhitelist(tester.acc0.Id(), tester.acc1.Id(), prototype.WhiteListed, fee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "lifetime")
	a.Empty(tester.acc1.Get().WhitelistingAccounts)

	ensureLifetime(t, tester.acc0)
	balance := tester.acc0.GetBalance()
	a.NoError(tester.acc0.SendTrx(
		AccountWhitelist(tester.acc0.Id(), tester.acc1.Id(), prototype.WhiteListed, fee)))
	a.EqualValues(balance-fee, tester.acc0.GetBalance())
	a.Equal([]prototype.AccountIdType{tester.acc0.Id()}, tester.acc1.Get().WhitelistingAccounts)
}

func (tester *WhitelistTester) transitions(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	ensureLifetime(t, tester.acc0)
	authorizer, target := tester.acc0, tester.acc2
	fee := feeOf(d, AccountWhitelist(authorizer.Id(), target.Id(), prototype.WhiteListed, 0))

	a.NoError(authorizer.SendTrx(
		AccountWhitelist(authorizer.Id(), target.Id(), prototype.WhiteListed, fee)))
	a.Equal([]prototype.AccountIdType{authorizer.Id()}, target.Get().WhitelistingAccounts)
	a.Empty(target.Get().BlacklistingAccounts)

	// a new opinion replaces the old one
	a.NoError(authorizer.SendTrx(
		AccountWhitelist(authorizer.Id(), target.Id(), prototype.BlackListed, fee)))
	a.Empty(target.Get().WhitelistingAccounts)
	a.Equal([]prototype.AccountIdType{authorizer.Id()}, target.Get().BlacklistingAccounts)

	a.NoError(authorizer.SendTrx(
		AccountWhitelist(authorizer.Id(), target.Id(), prototype.WhiteAndBlackListed, fee)))
	a.Equal([]prototype.AccountIdType{authorizer.Id()}, target.Get().WhitelistingAccounts)
	a.Equal([]prototype.AccountIdType{authorizer.Id()}, target.Get().BlacklistingAccounts)

	a.NoError(authorizer.SendTrx(
		AccountWhitelist(authorizer.Id(), target.Id(), prototype.NoListing, fee)))
	a.Empty(target.Get().WhitelistingAccounts)
	a.Empty(target.Get().BlacklistingAccounts)
}

func (tester *WhitelistTester) twoAuthorizers(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	ensureLifetime(t, tester.acc0)
	ensureLifetime(t, tester.acc1)
	target := tester.acc2
	fee := feeOf(d, AccountWhitelist(tester.acc0.Id(), target.Id(), prototype.WhiteListed, 0))

	a.NoError(tester.acc0.SendTrx(
		AccountWhitelist(tester.acc0.Id(), target.Id(), prototype.WhiteListed, fee)))
	a.NoError(tester.acc1.SendTrx(
		AccountWhitelist(tester.acc1.Id(), target.Id(), prototype.WhiteListed, fee)))

	// opinions are stored per authorizer, id ordered
	a.Equal([]prototype.AccountIdType{tester.acc0.Id(), tester.acc1.Id()},
		target.Get().WhitelistingAccounts)

	a.NoError(tester.acc0.SendTrx(
		AccountWhitelist(tester.acc0.Id(), target.Id(), prototype.NoListing, fee)))
	a.Equal([]prototype.AccountIdType{tester.acc1.Id()}, target.Get().WhitelistingAccounts)
}

func (tester *WhitelistTester) unknownTarget(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	ensureLifetime(t, tester.acc0)
	fee := feeOf(d, AccountWhitelist(tester.acc0.Id(), 99999, prototype.WhiteListed, 0))

	balance := tester.acc0.GetBalance()
	receipt := tester.acc0.TrxReceipt(
		AccountWhitelist(tester.acc0.Id(), 99999, prototype.WhiteListed, fee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "listed account not found")

	// the fee of a failed transaction is not kept
	a.EqualValues(0, receipt.FeePaid)
	a.EqualValues(balance, tester.acc0.GetBalance())
}

func (tester *WhitelistTester) listingBounds(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	fee := feeOf(d, AccountWhitelist(tester.acc0.Id(), tester.acc1.Id(), prototype.WhiteListed, 0))

	receipt := tester.acc0.TrxReceipt(
		AccountWhitelist(tester.acc0.Id(), tester.acc1.Id(), 0x4, fee))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "listing bitmask")
}
