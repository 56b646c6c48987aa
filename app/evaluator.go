package app

import (
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
)

type AccountCreateEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.AccountCreateOperation
}

type AccountUpdateEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.AccountUpdateOperation
}

type AccountWhitelistEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.AccountWhitelistOperation
}

type AccountUpgradeEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.AccountUpgradeOperation
}

type AccountTransferEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.AccountTransferOperation
}

type TetherAccountsEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.TetherAccountsOperation
}

type ChangePublicKeysEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.ChangePublicKeysOperation
}

type SetRollBackEnabledEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.SetRollBackEnabledOperation
}

type RollBackPublicKeysEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.RollBackPublicKeysOperation
}

type UpgradeAccountCyclesEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.UpgradeAccountCyclesOperation
}

type SetStartingCycleAssetAmountEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.SetStartingCycleAssetAmountOperation
}

type SetChainAuthorityEvaluator struct {
	BaseEvaluator
	ctx *ApplyContext
	op  *prototype.SetChainAuthorityOperation
}

// requireChainAuthority asserts that account holds the named role.
func requireChainAuthority(ctx *ApplyContext, account prototype.AccountIdType, kind string) {
	holder, ok := table.NewGlobalWrap(ctx.db).ChainAuthority(kind)
	opAssert(ok && holder == account, "account does not hold the "+kind+" chain authority")
}

func mustGetAccount(ctx *ApplyContext, id prototype.AccountIdType, who string) *table.AccountRecord {
	record := table.NewAccountWrap(ctx.db, id).Get()
	opAssert(record != nil, who+" account not found")
	return record
}

func (ev *AccountCreateEvaluator) Apply() {
	op := ev.op
	gw := table.NewGlobalWrap(ev.ctx.db)
	props := gw.Get()
	opAssert(props != nil, "global properties missing")

	requireChainAuthority(ev.ctx, op.Registrar, prototype.AuthorityRegistrar)
	opAssert(table.NewAccountWrap(ev.ctx.db, op.Registrar).CheckExist(), "registrar account not found")

	referrer := mustGetAccount(ev.ctx, op.Referrer, "referrer")
	opAssert(referrer.IsMember(props.HeadBlockTime), "referrer must be a member")

	_, taken := table.AccountIdByName(ev.ctx.db, op.Name)
	opAssert(!taken, "account name already registered")

	// accounts named inside the authorities must exist
	for _, auth := range op.Owner.AccountAuths {
		opAssert(table.NewAccountWrap(ev.ctx.db, auth.Account).CheckExist(), "owner auth account not found")
	}
	for _, auth := range op.Active.AccountAuths {
		opAssert(table.NewAccountWrap(ev.ctx.db, auth.Account).CheckExist(), "active auth account not found")
	}

	newId := props.NextAccountId
	mustNoError(gw.Modify(func(p *table.GlobalProperties) {
		p.NextAccountId++
	}), "account id allocation failed")

	owner := op.Owner
	active := op.Active
	options := op.Options
	mustNoError(table.NewAccountWrap(ev.ctx.db, newId).Create(func(r *table.AccountRecord) {
		r.Name = op.Name
		r.Kind = op.Kind
		r.Owner = &owner
		r.Active = &active
		r.Options = &options
		r.Registrar = op.Registrar
		r.Referrer = op.Referrer
		r.ReferrerPercent = op.ReferrerPercent
		r.CreatedAt = props.HeadBlockTime
		r.OwnerSpecial = op.Extensions.OwnerSpecialAuthority
		r.ActiveSpecial = op.Extensions.ActiveSpecialAuthority
		r.Balance = *prototype.NewAsset(0)
		if op.Kind == prototype.KindWallet || op.Kind == prototype.KindCustodian {
			r.CycleBalance = uint64(props.StartingCycleAssetAmount)
		}
	}), "account record creation failed")

	ev.ctx.control.names.Seed(op.Name, newId)
}

func (ev *AccountUpdateEvaluator) Apply() {
	op := ev.op
	wrap := table.NewAccountWrap(ev.ctx.db, op.Account)
	opAssert(wrap.CheckExist(), "target account not found")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		if op.Owner != nil {
			r.SavedOwner = r.Owner
			r.Owner = op.Owner
			r.OwnerChangeCount++
		}
		if op.Active != nil {
			r.SavedActive = r.Active
			r.Active = op.Active
			r.ActiveChangeCount++
		}
		if op.NewOptions != nil {
			r.Options = op.NewOptions
		}
		if op.Extensions.OwnerSpecialAuthority != nil {
			r.OwnerSpecial = op.Extensions.OwnerSpecialAuthority
		}
		if op.Extensions.ActiveSpecialAuthority != nil {
			r.ActiveSpecial = op.Extensions.ActiveSpecialAuthority
		}
	}), "account update failed")
}

func (ev *AccountWhitelistEvaluator) Apply() {
	op := ev.op

	authorizer := mustGetAccount(ev.ctx, op.AuthorizingAccount, "authorizing")
	opAssert(authorizer.LifetimeMember, "authorizing account must be a lifetime member")

	wrap := table.NewAccountWrap(ev.ctx.db, op.AccountToList)
	opAssert(wrap.CheckExist(), "listed account not found")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		white := table.IdSet(r.WhitelistingAccounts)
		black := table.IdSet(r.BlacklistingAccounts)
		if op.NewListing&prototype.WhiteListed != 0 {
			white.Add(op.AuthorizingAccount)
		} else {
			white.Remove(op.AuthorizingAccount)
		}
		if op.NewListing&prototype.BlackListed != 0 {
			black.Add(op.AuthorizingAccount)
		} else {
			black.Remove(op.AuthorizingAccount)
		}
		r.WhitelistingAccounts = table.SetIds(white)
		r.BlacklistingAccounts = table.SetIds(black)
	}), "listing update failed")
}

func (ev *AccountUpgradeEvaluator) Apply() {
	op := ev.op
	wrap := table.NewAccountWrap(ev.ctx.db, op.AccountToUpgrade)
	opAssert(wrap.CheckExist(), "target account not found")

	now := ev.ctx.control.HeadBlockTime()
	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		opAssert(!r.LifetimeMember, "account is already a lifetime member")
		if op.UpgradeToLifetimeMember {
			r.LifetimeMember = true
			return
		}
		base := now
		if r.MembershipExpiration > base {
			base = r.MembershipExpiration
		}
		r.MembershipExpiration = base + constants.MembershipAnnualSeconds
	}), "membership update failed")
}

func (ev *AccountTransferEvaluator) Apply() {
	op := ev.op

	newOwner := mustGetAccount(ev.ctx, op.NewOwner, "new owner")
	wrap := table.NewAccountWrap(ev.ctx.db, op.AccountId)
	opAssert(wrap.CheckExist(), "target account not found")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		r.Owner = newOwner.Owner
		r.Active = newOwner.Active
		// the transfer wipes whitelist opinions about the account;
		// blacklist opinions stick to it
		r.WhitelistingAccounts = nil
	}), "account transfer failed")
}

func (ev *TetherAccountsEvaluator) Apply() {
	op := ev.op

	wallet := mustGetAccount(ev.ctx, op.WalletAccount, "wallet")
	opAssert(wallet.Kind == prototype.KindWallet, "tether needs a wallet-kind account")
	vault := mustGetAccount(ev.ctx, op.VaultAccount, "vault")
	opAssert(vault.Kind == prototype.KindVault, "tether needs a vault-kind account")
	opAssert(!wallet.IsTetheredTo(op.VaultAccount), "accounts are already tethered")

	mustNoError(table.NewAccountWrap(ev.ctx.db, op.WalletAccount).Modify(func(r *table.AccountRecord) {
		vaults := table.IdSet(r.TetheredVaults)
		vaults.Add(op.VaultAccount)
		r.TetheredVaults = table.SetIds(vaults)
	}), "wallet tether update failed")
	mustNoError(table.NewAccountWrap(ev.ctx.db, op.VaultAccount).Modify(func(r *table.AccountRecord) {
		wallets := table.IdSet(r.TetheredWallets)
		wallets.Add(op.WalletAccount)
		r.TetheredWallets = table.SetIds(wallets)
	}), "vault tether update failed")
}

func (ev *ChangePublicKeysEvaluator) Apply() {
	op := ev.op
	wrap := table.NewAccountWrap(ev.ctx.db, op.Account)
	opAssert(wrap.CheckExist(), "target account not found")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		// the whole pre-change authority pair is saved, so a later
		// roll back restores the account as it was
		r.SavedOwner = r.Owner
		r.SavedActive = r.Active
		if op.Owner != nil {
			r.Owner = op.Owner
			r.OwnerChangeCount++
		}
		if op.Active != nil {
			r.Active = op.Active
			r.ActiveChangeCount++
		}
	}), "key change failed")
}

func (ev *SetRollBackEnabledEvaluator) Apply() {
	op := ev.op
	wrap := table.NewAccountWrap(ev.ctx.db, op.Account)
	opAssert(wrap.CheckExist(), "target account not found")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		r.RollBackEnabled = op.RollBackEnabled
	}), "roll back toggle failed")
}

func (ev *RollBackPublicKeysEvaluator) Apply() {
	op := ev.op

	requireChainAuthority(ev.ctx, op.AuthorityAccount, prototype.AuthorityLicenseAdministrator)

	wrap := table.NewAccountWrap(ev.ctx.db, op.Account)
	record := wrap.Get()
	opAssert(record != nil, "target account not found")
	opAssert(record.RollBackEnabled, "account has roll back disabled")
	opAssert(record.SavedOwner != nil && record.SavedActive != nil, "account has no saved keys to restore")

	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		// swap, so rolling back a roll back is possible
		r.Owner, r.SavedOwner = r.SavedOwner, r.Owner
		r.Active, r.SavedActive = r.SavedActive, r.Active
		r.OwnerChangeCount++
		r.ActiveChangeCount++
	}), "key roll back failed")
}

func (ev *UpgradeAccountCyclesEvaluator) Apply() {
	// catalogued but disabled; Validate rejects it long before Apply
	panic(prototype.ErrCyclesUpgradeDisabled)
}

func (ev *SetStartingCycleAssetAmountEvaluator) Apply() {
	op := ev.op

	requireChainAuthority(ev.ctx, op.Issuer, prototype.AuthorityRoot)

	mustNoError(table.NewGlobalWrap(ev.ctx.db).Modify(func(p *table.GlobalProperties) {
		p.StartingCycleAssetAmount = op.NewAmount
	}), "global parameter update failed")
}

func (ev *SetChainAuthorityEvaluator) Apply() {
	op := ev.op

	requireChainAuthority(ev.ctx, op.Issuer, prototype.AuthorityRoot)
	opAssert(table.NewAccountWrap(ev.ctx.db, op.Account).CheckExist(), "appointed account not found")

	mustNoError(table.NewGlobalWrap(ev.ctx.db).Modify(func(p *table.GlobalProperties) {
		p.ChainAuthorities[op.Kind] = op.Account
	}), "chain authority update failed")
}
