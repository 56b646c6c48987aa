package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type AccountCreateTester struct {
	acc0, acc1      *SandboxAccount
	registrar, root *SandboxAccount
}

func (tester *AccountCreateTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")
	tester.acc1 = d.Account("actor1")
	tester.registrar = d.Account(constants.GenesisRegistrarAccount)
	tester.root = d.Account(constants.GenesisRootAccount)

	t.Run("normal", d.Test(tester.normal))
	t.Run("ids in registration order", d.Test(tester.idOrder))
	t.Run("registrar authority required", d.Test(tester.nonRegistrar))
	t.Run("referrer must be member", d.Test(tester.nonMemberReferrer))
	t.Run("duplicate name", d.Test(tester.duplicateName))
	t.Run("authority accounts must exist", d.Test(tester.unknownAuthAccount))
	t.Run("buyback needs issuer consent", d.Test(tester.buybackConsent))
	t.Run("name grammar", d.Test(tester.badNames))
}

func (tester *AccountCreateTester) normal(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	name := "created0"
	balance := tester.registrar.GetBalance()
	a.NoError(tester.registrar.SendTrx(
		AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindWallet, name, d.KeyOf(name))))

	acc := d.Account(name)
	a.True(acc.CheckExist())
	record := acc.Get()
	a.Equal(prototype.KindWallet, record.Kind)
	a.Equal(tester.registrar.Id(), record.Registrar)
	a.Equal(tester.root.Id(), record.Referrer)
	a.EqualValues(d.GlobalProps().StartingCycleAssetAmount, record.CycleBalance)
	a.EqualValues(0, record.Balance.Amount)
	a.False(record.LifetimeMember)
	a.True(record.Owner.KeyAuths[0].Key.Equal(d.KeyOf(name)))

	// creation is free
	a.EqualValues(balance, tester.registrar.GetBalance())
}

func (tester *AccountCreateTester) idOrder(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	next := d.GlobalProps().NextAccountId

	a.NoError(tester.registrar.SendTrx(
		AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindWallet, "pair0", d.KeyOf("pair0")),
		AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindVault, "pair1", d.KeyOf("pair1"))))

	a.Equal(next, d.Account("pair0").Id())
	a.Equal(next+1, d.Account("pair1").Id())
	a.Equal(next+2, d.GlobalProps().NextAccountId)

	// vaults hold licensed funds, they start without cycles
	a.EqualValues(0, d.Account("pair1").Get().CycleBalance)
}

func (tester *AccountCreateTester) nonRegistrar(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	next := d.GlobalProps().NextAccountId

	receipt := tester.acc0.TrxReceipt(
		AccountCreate(tester.acc0.Id(), tester.root.Id(), prototype.KindWallet, "intruder", d.KeyOf("intruder")))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "registrar chain authority")

	a.False(d.Account("intruder").CheckExist())
	a.Equal(next, d.GlobalProps().NextAccountId)
}

func (tester *AccountCreateTester) nonMemberReferrer(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	receipt := tester.registrar.TrxReceipt(
		AccountCreate(tester.registrar.Id(), tester.acc0.Id(), prototype.KindWallet, "orphan", d.KeyOf("orphan")))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "member")
	a.False(d.Account("orphan").CheckExist())
}

func (tester *AccountCreateTester) duplicateName(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	name := "duplicated"
	a.NoError(tester.registrar.SendTrx(
		AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindWallet, name, d.KeyOf(name))))
	firstId := d.Account(name).Id()

	receipt := tester.registrar.TrxReceipt(
		AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindWallet, name, d.KeyOf(name)))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "already registered")
	a.Equal(firstId, d.Account(name).Id())
}

func (tester *AccountCreateTester) unknownAuthAccount(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	op := &prototype.AccountCreateOperation{
		Kind:      prototype.KindWallet,
		Registrar: tester.registrar.Id(),
		Referrer:  tester.root.Id(),
		Name:      "ghostly",
		Owner:     *prototype.NewAuthorityFromAccount(99999),
		Active:    *prototype.NewAuthorityFromPubKey(d.KeyOf("ghostly")),
		Options:   prototype.AccountOptions{MemoKey: d.KeyOf("ghostly")},
	}
	receipt := tester.registrar.TrxReceipt(prototype.WrapOperation(op))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "owner auth account not found")
	a.False(d.Account("ghostly").CheckExist())
}

func (tester *AccountCreateTester) buybackConsent(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	op := &prototype.AccountCreateOperation{
		Kind:      prototype.KindWallet,
		Registrar: tester.registrar.Id(),
		Referrer:  tester.root.Id(),
		Name:      "buyback0",
		Owner:     *prototype.NewAuthorityFromPubKey(d.KeyOf("buyback0")),
		Active:    *prototype.NewAuthorityFromPubKey(d.KeyOf("buyback0")),
		Options:   prototype.AccountOptions{MemoKey: d.KeyOf("buyback0")},
		Extensions: prototype.AccountCreateExtensions{
			BuybackOptions: &prototype.BuybackAccountOptions{
				AssetToBuy:       1,
				AssetToBuyIssuer: tester.acc1.Id(),
			},
		},
	}

	// the registrar alone cannot speak for the asset issuer
	receipt := tester.registrar.TrxReceipt(prototype.WrapOperation(op))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "authority")
	a.False(d.Account("buyback0").CheckExist())

	receipt, err := d.SendTrxByAccounts(
		[]string{constants.GenesisRegistrarAccount, "actor1"}, prototype.WrapOperation(op))
	a.NoError(err)
	a.EqualValues(prototype.StatusSuccess, receipt.Status)
	a.True(d.Account("buyback0").CheckExist())
}

func (tester *AccountCreateTester) badNames(t *testing.T, d *Sandbox) {
	a := assert.New(t)

	for _, name := range []string{"ab", "-lead", "trail-", "double--hyphen", "UPPER", "has_underscore"} {
		receipt := tester.registrar.TrxReceipt(
			AccountCreate(tester.registrar.Id(), tester.root.Id(), prototype.KindWallet, name, d.KeyOf(name)))
		a.EqualValues(prototype.StatusFailed, receipt.Status)
		a.False(d.Account(name).CheckExist())
	}
}
