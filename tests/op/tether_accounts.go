package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type TetherTester struct {
	acc0, acc1    *SandboxAccount
	wallet, vault *SandboxAccount
}

func (tester *TetherTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")

	// the actors are all wallets, so set up a proper pair first
	registrar := d.Account(constants.GenesisRegistrarAccount)
	root := d.Account(constants.GenesisRootAccount)
	if err := registrar.SendTrx(
		AccountCreate(registrar.Id(), root.Id(), prototype.KindWallet, "wallet0", d.KeyOf("wallet0")),
		AccountCreate(registrar.Id(), root.Id(), prototype.KindVault, "vault0", d.KeyOf("vault0")),
	); err != nil {
		t.Fatal(err)
	}
	tester.wallet = d.Account("wallet0")
	tester.vault = d.Account("vault0")

	t.Run("both must sign", d.Test(tester.bothSign))
	t.Run("normal", d.Test(tester.normal))
	t.Run("already tethered", d.Test(tester.alreadyTethered))
	t.Run("kind mismatch", d.Test(tester.kindMismatch))
}

func (tester *TetherTester) bothSign(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	for _, solo := range []string{"wallet0", "vault0"} {
		receipt := d.TrxReceiptByAccount(solo,
			TetherAccounts(tester.wallet.Id(), tester.vault.Id()))
		a.EqualValues(prototype.StatusFailed, receipt.Status)
		a.Contains(receipt.ErrorInfo, "authority")
	}
	a.Empty(tester.wallet.Get().TetheredVaults)
	a.Empty(tester.vault.Get().TetheredWallets)
}

func (tester *TetherTester) normal(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	wallet, vault := tester.wallet, tester.vault

	receipt, err := d.SendTrxByAccounts([]string{"wallet0", "vault0"},
		TetherAccounts(wallet.Id(), vault.Id()))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)

	// tethering is free
	a.EqualValues(0, receipt.FeePaid)

	a.Equal([]prototype.AccountIdType{vault.Id()}, wallet.Get().TetheredVaults)
	a.Equal([]prototype.AccountIdType{wallet.Id()}, vault.Get().TetheredWallets)
	a.Empty(wallet.Get().TetheredWallets)
	a.Empty(vault.Get().TetheredVaults)
}

func (tester *TetherTester) alreadyTethered(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	receipt, err := d.SendTrxByAccounts([]string{"wallet0", "vault0"},
		TetherAccounts(tester.wallet.Id(), tester.vault.Id()))
	a.NoError(err)
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "already tethered")
	a.Len(tester.wallet.Get().TetheredVaults, 1)
}

func (tester *TetherTester) kindMismatch(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	// a plain wallet cannot stand in the vault slot
	receipt, err := d.SendTrxByAccounts([]string{"actor0", "actor1"},
		TetherAccounts(tester.acc0.Id(), tester.acc1.Id()))
	a.NoError(err)
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "vault-kind")

	// nor a vault in the wallet slot
	receipt, err = d.SendTrxByAccounts([]string{"wallet0", "vault0"},
		TetherAccounts(tester.vault.Id(), tester.wallet.Id()))
	a.NoError(err)
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "wallet-kind")
}
