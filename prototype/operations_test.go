package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPubKey(seed byte) *PublicKeyType {
	data := make([]byte, 33)
	data[0] = 0x2
	for i := 1; i < len(data); i++ {
		data[i] = seed
	}
	return PublicKeyFromBytes(data)
}

func testCreateOp() *AccountCreateOperation {
	return &AccountCreateOperation{
		Fee:             *NewAsset(0),
		Kind:            KindVault,
		Registrar:       17,
		Referrer:        9,
		ReferrerPercent: 5000,
		Name:            "alice-vault",
		Owner:           *NewAuthorityFromPubKey(testPubKey(1)),
		Active:          *NewAuthorityFromPubKey(testPubKey(2)),
		Options: AccountOptions{
			MemoKey:       testPubKey(3),
			VotingAccount: ProxyToSelfAccountId,
		},
	}
}

func requiredActive(op BaseOperation) map[AccountIdType]bool {
	auths := make(map[AccountIdType]bool)
	op.GetRequiredActive(&auths)
	return auths
}

func requiredOwner(op BaseOperation) map[AccountIdType]bool {
	auths := make(map[AccountIdType]bool)
	op.GetRequiredOwner(&auths)
	return auths
}

func TestAccountCreateValidate(t *testing.T) {
	a := assert.New(t)

	op := testCreateOp()
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{17: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
	a.Equal(AccountIdType(17), op.FeePayer())

	op = testCreateOp()
	op.Fee.Amount = -1
	a.Equal(ErrNegativeFee, op.Validate())

	op = testCreateOp()
	op.Kind = AccountKind(9)
	a.Equal(ErrUnknownAccountKind, op.Validate())

	op = testCreateOp()
	op.ReferrerPercent = 10001
	a.Equal(ErrPercentOutOfRange, op.Validate())

	op = testCreateOp()
	op.Name = "Alice"
	a.Equal(ErrAccountNameFormat, op.Validate())

	op = testCreateOp()
	op.Owner.WeightThreshold = 0
	err := op.Validate()
	a.True(IsStructural(err))
	a.Contains(err.Error(), "owner")

	op = testCreateOp()
	op.Options.NumWitnessVotes = 1
	err = op.Validate()
	a.True(IsStructural(err))
	a.Contains(err.Error(), "options")
}

func TestAccountCreateBuybackNeedsIssuer(t *testing.T) {
	a := assert.New(t)

	op := testCreateOp()
	op.Extensions.BuybackOptions = &BuybackAccountOptions{
		AssetToBuy:       2,
		AssetToBuyIssuer: 33,
	}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{17: true, 33: true}, requiredActive(op))
	a.Empty(requiredOwner(op))

	// buyback delegation and special authorities exclude each other
	op.Extensions.OwnerSpecialAuthority = &SpecialAuthority{Type: SpecialNone}
	a.Equal(ErrBuybackWithSpecial, op.Validate())
}

func TestAccountUpdateOwnerTest(t *testing.T) {
	a := assert.New(t)

	// plain option change keeps the requirement at active
	op := &AccountUpdateOperation{
		Fee:        *NewAsset(1),
		Account:    8,
		NewOptions: &AccountOptions{VotingAccount: ProxyToSelfAccountId},
	}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{8: true}, requiredActive(op))
	a.Empty(requiredOwner(op))

	// an owner field raises it to owner and drops active entirely
	op.Owner = NewAuthorityFromPubKey(testPubKey(1))
	a.NoError(op.Validate())
	a.Empty(requiredActive(op))
	a.Equal(map[AccountIdType]bool{8: true}, requiredOwner(op))

	// so does an owner special authority arriving by extension slot
	op.Owner = nil
	op.Extensions.OwnerSpecialAuthority = &SpecialAuthority{Type: SpecialNone}
	a.NoError(op.Validate())
	a.Empty(requiredActive(op))
	a.Equal(map[AccountIdType]bool{8: true}, requiredOwner(op))

	// an active special authority does not
	op.Extensions.OwnerSpecialAuthority = nil
	op.Extensions.ActiveSpecialAuthority = &SpecialAuthority{Type: SpecialNone}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{8: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
}

func TestAccountUpdateValidate(t *testing.T) {
	a := assert.New(t)

	op := &AccountUpdateOperation{Fee: *NewAsset(1), Account: 8}
	a.Equal(ErrNoUpdateAction, op.Validate())

	op.NewOptions = &AccountOptions{VotingAccount: ProxyToSelfAccountId}
	op.Account = TempAccountId
	a.Equal(ErrTempAccountUpdate, op.Validate())

	op.Account = 8
	op.Active = &Authority{WeightThreshold: 1}
	err := op.Validate()
	a.True(IsStructural(err))
	a.Contains(err.Error(), "active")
}

func TestAccountWhitelistValidate(t *testing.T) {
	a := assert.New(t)

	for listing := uint8(0); listing < 4; listing++ {
		op := &AccountWhitelistOperation{
			Fee:                *NewAsset(0),
			AuthorizingAccount: 3,
			AccountToList:      4,
			NewListing:         listing,
		}
		a.NoError(op.Validate())
	}

	op := &AccountWhitelistOperation{AuthorizingAccount: 3, AccountToList: 4, NewListing: 4}
	a.Equal(ErrListingOutOfRange, op.Validate())

	op.NewListing = WhiteListed
	op.Fee.Amount = -5
	a.Equal(ErrNegativeFee, op.Validate())

	a.Equal(map[AccountIdType]bool{3: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
	a.Equal(AccountIdType(3), op.FeePayer())
}

func TestAccountUpgradeResolver(t *testing.T) {
	a := assert.New(t)

	op := &AccountUpgradeOperation{
		Fee:                     *NewAsset(0),
		AccountToUpgrade:        12,
		UpgradeToLifetimeMember: true,
	}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{12: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
	a.Equal(AccountIdType(12), op.FeePayer())
}

func TestAccountTransferResolver(t *testing.T) {
	a := assert.New(t)

	op := &AccountTransferOperation{Fee: *NewAsset(0), AccountId: 6, NewOwner: 7}
	a.NoError(op.Validate())

	// only the account being handed over signs, never the receiver
	a.Equal(map[AccountIdType]bool{6: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
	a.Equal(AccountIdType(6), op.FeePayer())
}

func TestTetherAccountsNeedsBothParties(t *testing.T) {
	a := assert.New(t)

	op := &TetherAccountsOperation{Fee: *NewAsset(0), WalletAccount: 10, VaultAccount: 11}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{10: true, 11: true}, requiredActive(op))
	a.Empty(requiredOwner(op))
	a.Equal(AccountIdType(10), op.FeePayer())

	// self tether still resolves to a single entry
	op.VaultAccount = 10
	a.Equal(map[AccountIdType]bool{10: true}, requiredActive(op))
}

func TestChangePublicKeysOwnerTest(t *testing.T) {
	a := assert.New(t)

	op := &ChangePublicKeysOperation{
		Fee:     *NewAsset(0),
		Account: 8,
		Active:  NewAuthorityFromPubKey(testPubKey(1)),
	}
	a.NoError(op.Validate())
	a.Equal(map[AccountIdType]bool{8: true}, requiredActive(op))
	a.Empty(requiredOwner(op))

	op.Owner = NewAuthorityFromPubKey(testPubKey(2))
	a.NoError(op.Validate())
	a.Empty(requiredActive(op))
	a.Equal(map[AccountIdType]bool{8: true}, requiredOwner(op))
}

func TestRollBackOperations(t *testing.T) {
	a := assert.New(t)

	enable := &SetRollBackEnabledOperation{Fee: *NewAsset(0), Account: 8, RollBackEnabled: true}
	a.NoError(enable.Validate())
	a.Equal(map[AccountIdType]bool{8: true}, requiredActive(enable))
	a.Empty(requiredOwner(enable))

	// the license administrator signs the roll back, not the holder
	rollBack := &RollBackPublicKeysOperation{Fee: *NewAsset(0), AuthorityAccount: 2, Account: 8}
	a.NoError(rollBack.Validate())
	a.Equal(map[AccountIdType]bool{2: true}, requiredActive(rollBack))
	a.Empty(requiredOwner(rollBack))
	a.Equal(AccountIdType(2), rollBack.FeePayer())
}

func TestUpgradeAccountCyclesIsDisabled(t *testing.T) {
	a := assert.New(t)

	op := &UpgradeAccountCyclesOperation{Fee: *NewAsset(0), Account: 8}
	err := op.Validate()
	a.Equal(ErrCyclesUpgradeDisabled, err)
	a.True(IsDisabledOperation(err))

	// the rest of the behavior set stays answerable
	a.Equal(map[AccountIdType]bool{8: true}, requiredActive(op))
	a.Equal(AccountIdType(8), op.FeePayer())
	fee, ferr := op.CalculateFee(DefaultFeeSchedule())
	a.NoError(ferr)
	a.Equal(int64(0), fee.Amount)
}

func TestChainAdminOperations(t *testing.T) {
	a := assert.New(t)

	amount := &SetStartingCycleAssetAmountOperation{Fee: *NewAsset(0), Issuer: 1, NewAmount: 250}
	a.NoError(amount.Validate())
	a.Equal(map[AccountIdType]bool{1: true}, requiredActive(amount))
	a.Empty(requiredOwner(amount))

	role := &SetChainAuthorityOperation{Fee: *NewAsset(0), Issuer: 1, Account: 20, Kind: "registrar"}
	a.NoError(role.Validate())
	a.Equal(map[AccountIdType]bool{1: true}, requiredActive(role))

	role.Kind = "emperor"
	a.Equal(ErrUnknownAuthorityKind, role.Validate())
}

func TestOpTypeRegistry(t *testing.T) {
	a := assert.New(t)

	a.Equal("account_create", OpTypeAccountCreate.String())
	a.Equal("set_chain_authority", OpTypeSetChainAuthority.String())

	for _, name := range OpNames() {
		tag, ok := OpTypeFromName(name)
		a.True(ok)
		op, err := NewBaseOperation(tag)
		a.NoError(err)
		a.Equal(tag, op.OpType())
	}

	_, ok := OpTypeFromName("mint_unicorns")
	a.False(ok)

	_, err := NewBaseOperation(OpType(200))
	a.Equal(ErrUnknownOpType, err)
}
