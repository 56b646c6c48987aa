package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationWireRoundTrip(t *testing.T) {
	a := assert.New(t)

	create := testCreateOp()
	create.Options.NumWitnessVotes = 1
	create.Options.Votes = []VoteIdType{NewVoteId(VoteWitness, 3)}
	create.Extensions.BuybackOptions = &BuybackAccountOptions{
		AssetToBuy:       2,
		AssetToBuyIssuer: 33,
		Markets:          []AssetIdType{1, 4},
	}

	ops := []BaseOperation{
		create,
		&AccountUpdateOperation{
			Fee:     *NewAsset(12345),
			Account: 8,
			Owner: &Authority{
				WeightThreshold: 2,
				AccountAuths:    []AccountAuth{{Account: 3, Weight: 1}},
				KeyAuths:        []KeyAuth{{Key: testPubKey(1), Weight: 1}},
			},
			NewOptions: &AccountOptions{
				MemoKey:       testPubKey(2),
				VotingAccount: 5,
			},
			Extensions: AccountUpdateExtensions{
				ActiveSpecialAuthority: &SpecialAuthority{Type: SpecialNone},
			},
		},
		&AccountWhitelistOperation{Fee: *NewAsset(1), AuthorizingAccount: 3, AccountToList: 4, NewListing: WhiteAndBlackListed},
		&AccountUpgradeOperation{Fee: *NewAsset(1), AccountToUpgrade: 12, UpgradeToLifetimeMember: true},
		&AccountTransferOperation{Fee: *NewAsset(1), AccountId: 6, NewOwner: 7},
		&TetherAccountsOperation{Fee: *NewAsset(1), WalletAccount: 10, VaultAccount: 11},
		&ChangePublicKeysOperation{Fee: *NewAsset(1), Account: 8, Active: NewAuthorityFromPubKey(testPubKey(4))},
		&SetRollBackEnabledOperation{Fee: *NewAsset(1), Account: 8, RollBackEnabled: true},
		&RollBackPublicKeysOperation{Fee: *NewAsset(1), AuthorityAccount: 2, Account: 8},
		&UpgradeAccountCyclesOperation{Fee: Asset{Amount: -7}, Account: 8, Description: "license upgrade"},
		&SetStartingCycleAssetAmountOperation{Fee: *NewAsset(1), Issuer: 1, NewAmount: 250},
		&SetChainAuthorityOperation{Fee: *NewAsset(1), Issuer: 1, Account: 20, Kind: "registrar"},
	}
	a.Equal(int(opTypeCount), len(ops))

	for _, op := range ops {
		got, err := UnpackOperation(PackOperation(op))
		a.NoError(err, op.OpType().String())
		a.Equal(op, got, op.OpType().String())
	}
}

func TestUnpackRejectsUnknownTag(t *testing.T) {
	a := assert.New(t)

	_, err := UnpackOperation([]byte{0xC8, 0x01}) // uvarint 200
	a.Equal(ErrUnknownOpType, err)

	_, err = UnpackOperation(nil)
	a.Equal(ErrTruncatedData, err)
}

func TestUnpackRejectsTrailingBytes(t *testing.T) {
	a := assert.New(t)

	packed := PackOperation(testCreateOp())
	_, err := UnpackOperation(append(packed, 0x00))
	a.Error(err)
	a.True(IsStructural(err))
}

func TestUnpackRejectsEveryTruncation(t *testing.T) {
	a := assert.New(t)

	packed := PackOperation(testCreateOp())
	for i := 0; i < len(packed); i++ {
		_, err := UnpackOperation(packed[:i])
		a.Error(err, "prefix of %d bytes", i)
	}
}

func TestUnpackRejectsBadPresenceByte(t *testing.T) {
	a := assert.New(t)

	update := &AccountUpdateOperation{Fee: *NewAsset(1), Account: 8}
	mutated := PackOperation(update)
	// tag, fee amount, fee asset id, account, then the owner presence byte
	mutated[4] = 0x2
	_, err := UnpackOperation(mutated)
	a.Error(err)
	a.True(IsStructural(err))
}
