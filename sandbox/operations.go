package sandbox

import (
	"github.com/dascoin/dascoin-go/prototype"
)

// Constructors for every catalog operation. Free operations leave the fee
// zero; the rest take the offered fee explicitly, amounts in core asset
// satoshis.

func AccountCreate(registrar, referrer prototype.AccountIdType, kind prototype.AccountKind, name string, key *prototype.PublicKeyType) *prototype.Operation {
	return prototype.WrapOperation(&prototype.AccountCreateOperation{
		Kind:      kind,
		Registrar: registrar,
		Referrer:  referrer,
		Name:      name,
		Owner:     *prototype.NewAuthorityFromPubKey(key),
		Active:    *prototype.NewAuthorityFromPubKey(key),
		Options:   prototype.AccountOptions{MemoKey: key},
	})
}

func AccountUpdate(account prototype.AccountIdType, owner, active *prototype.Authority, options *prototype.AccountOptions, fee int64) *prototype.Operation {
	return prototype.WrapOperation(&prototype.AccountUpdateOperation{
		Fee:        *prototype.NewAsset(fee),
		Account:    account,
		Owner:      owner,
		Active:     active,
		NewOptions: options,
	})
}

func AccountWhitelist(authorizer, listed prototype.AccountIdType, listing uint8, fee int64) *prototype.Operation {
	return prototype.WrapOperation(&prototype.AccountWhitelistOperation{
		Fee:                *prototype.NewAsset(fee),
		AuthorizingAccount: authorizer,
		AccountToList:      listed,
		NewListing:         listing,
	})
}

func AccountUpgrade(account prototype.AccountIdType, lifetime bool, fee int64) *prototype.Operation {
	return prototype.WrapOperation(&prototype.AccountUpgradeOperation{
		Fee:                     *prototype.NewAsset(fee),
		AccountToUpgrade:        account,
		UpgradeToLifetimeMember: lifetime,
	})
}

func AccountTransfer(account, newOwner prototype.AccountIdType, fee int64) *prototype.Operation {
	return prototype.WrapOperation(&prototype.AccountTransferOperation{
		Fee:       *prototype.NewAsset(fee),
		AccountId: account,
		NewOwner:  newOwner,
	})
}

func TetherAccounts(wallet, vault prototype.AccountIdType) *prototype.Operation {
	return prototype.WrapOperation(&prototype.TetherAccountsOperation{
		WalletAccount: wallet,
		VaultAccount:  vault,
	})
}

func ChangePublicKeys(account prototype.AccountIdType, owner, active *prototype.Authority) *prototype.Operation {
	return prototype.WrapOperation(&prototype.ChangePublicKeysOperation{
		Account: account,
		Active:  active,
		Owner:   owner,
	})
}

func SetRollBackEnabled(account prototype.AccountIdType, enabled bool) *prototype.Operation {
	return prototype.WrapOperation(&prototype.SetRollBackEnabledOperation{
		Account:         account,
		RollBackEnabled: enabled,
	})
}

func RollBackPublicKeys(authority, account prototype.AccountIdType) *prototype.Operation {
	return prototype.WrapOperation(&prototype.RollBackPublicKeysOperation{
		AuthorityAccount: authority,
		Account:          account,
	})
}

func UpgradeAccountCycles(account prototype.AccountIdType, description string) *prototype.Operation {
	return prototype.WrapOperation(&prototype.UpgradeAccountCyclesOperation{
		Account:     account,
		Description: description,
	})
}

func SetStartingCycleAssetAmount(issuer prototype.AccountIdType, amount uint32) *prototype.Operation {
	return prototype.WrapOperation(&prototype.SetStartingCycleAssetAmountOperation{
		Issuer:    issuer,
		NewAmount: amount,
	})
}

func SetChainAuthority(issuer, account prototype.AccountIdType, kind string) *prototype.Operation {
	return prototype.WrapOperation(&prototype.SetChainAuthorityOperation{
		Issuer:  issuer,
		Account: account,
		Kind:    kind,
	})
}
