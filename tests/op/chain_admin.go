package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type ChainAdminTester struct {
	acc0, root, registrar *SandboxAccount
}

func (tester *ChainAdminTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.root = d.Account(constants.GenesisRootAccount)
	tester.registrar = d.Account(constants.GenesisRegistrarAccount)

	t.Run("starting cycles", d.Test(tester.startingCycles))
	t.Run("root only", d.Test(tester.rootOnly))
	t.Run("registrar handover", d.Test(tester.registrarHandover))
	t.Run("unknown appointee", d.Test(tester.unknownAppointee))
	t.Run("kind grammar", d.Test(tester.kindGrammar))
}

func (tester *ChainAdminTester) startingCycles(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	root, registrar := tester.root, tester.registrar

	a.NoError(root.SendTrx(SetStartingCycleAssetAmount(root.Id(), 777)))
	a.EqualValues(777, d.GlobalProps().StartingCycleAssetAmount)

	// the new grant applies to wallets registered from now on
	a.NoError(registrar.SendTrx(AccountCreate(
		registrar.Id(), root.Id(), prototype.KindWallet, "cyclewallet", d.KeyOf("cyclewallet"))))
	a.EqualValues(777, d.Account("cyclewallet").Get().CycleBalance)
}

func (tester *ChainAdminTester) rootOnly(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0

	receipt := acc.TrxReceipt(SetStartingCycleAssetAmount(acc.Id(), 1))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "root chain authority")
	a.EqualValues(777, d.GlobalProps().StartingCycleAssetAmount)

	receipt = acc.TrxReceipt(SetChainAuthority(acc.Id(), acc.Id(), prototype.AuthorityRegistrar))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "root chain authority")
}

func (tester *ChainAdminTester) registrarHandover(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc, root, registrar := tester.acc0, tester.root, tester.registrar

	a.NoError(root.SendTrx(SetChainAuthority(root.Id(), acc.Id(), prototype.AuthorityRegistrar)))
	a.Equal(acc.Id(), d.GlobalProps().ChainAuthorities[prototype.AuthorityRegistrar])

	// the genesis registrar lost the role with the reassignment
	receipt := registrar.TrxReceipt(AccountCreate(
		registrar.Id(), root.Id(), prototype.KindWallet, "orphan", d.KeyOf("orphan")))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "registrar chain authority")
	a.False(d.Account("orphan").CheckExist())

	a.NoError(acc.SendTrx(AccountCreate(
		acc.Id(), root.Id(), prototype.KindWallet, "newbie", d.KeyOf("newbie"))))
	a.True(d.Account("newbie").CheckExist())

	a.NoError(root.SendTrx(SetChainAuthority(root.Id(), registrar.Id(), prototype.AuthorityRegistrar)))
	a.Equal(registrar.Id(), d.GlobalProps().ChainAuthorities[prototype.AuthorityRegistrar])
}

func (tester *ChainAdminTester) unknownAppointee(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	root := tester.root

	receipt := root.TrxReceipt(SetChainAuthority(root.Id(), 99999, prototype.AuthorityCycleIssuer))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "appointed account not found")

	_, held := d.GlobalProps().ChainAuthorities[prototype.AuthorityCycleIssuer]
	a.False(held)
}

func (tester *ChainAdminTester) kindGrammar(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	root := tester.root

	// rejected at validation, before any authority or state checks
	receipt := root.TrxReceipt(SetChainAuthority(root.Id(), tester.acc0.Id(), "galactic-emperor"))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "unknown chain authority kind")

	a.NoError(root.SendTrx(SetChainAuthority(root.Id(), tester.acc0.Id(), prototype.AuthorityWireOutHandler)))
	a.Equal(tester.acc0.Id(), d.GlobalProps().ChainAuthorities[prototype.AuthorityWireOutHandler])
}
