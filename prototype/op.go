package prototype

import "fmt"

// OpType tags the operation catalog. Wire tags are append-only: new
// variants take the next free value and old values are never reassigned.
type OpType uint16

const (
	OpTypeAccountCreate OpType = iota
	OpTypeAccountUpdate
	OpTypeAccountWhitelist
	OpTypeAccountUpgrade
	OpTypeAccountTransfer
	OpTypeTetherAccounts
	OpTypeChangePublicKeys
	OpTypeSetRollBackEnabled
	OpTypeRollBackPublicKeys
	OpTypeUpgradeAccountCycles
	OpTypeSetStartingCycleAssetAmount
	OpTypeSetChainAuthority

	opTypeCount // keep last
)

type opEntry struct {
	name string
	make func() BaseOperation
}

var opRegistry = [opTypeCount]opEntry{
	OpTypeAccountCreate:               {"account_create", func() BaseOperation { return new(AccountCreateOperation) }},
	OpTypeAccountUpdate:               {"account_update", func() BaseOperation { return new(AccountUpdateOperation) }},
	OpTypeAccountWhitelist:            {"account_whitelist", func() BaseOperation { return new(AccountWhitelistOperation) }},
	OpTypeAccountUpgrade:              {"account_upgrade", func() BaseOperation { return new(AccountUpgradeOperation) }},
	OpTypeAccountTransfer:             {"account_transfer", func() BaseOperation { return new(AccountTransferOperation) }},
	OpTypeTetherAccounts:              {"tether_accounts", func() BaseOperation { return new(TetherAccountsOperation) }},
	OpTypeChangePublicKeys:            {"change_public_keys", func() BaseOperation { return new(ChangePublicKeysOperation) }},
	OpTypeSetRollBackEnabled:          {"set_roll_back_enabled", func() BaseOperation { return new(SetRollBackEnabledOperation) }},
	OpTypeRollBackPublicKeys:          {"roll_back_public_keys", func() BaseOperation { return new(RollBackPublicKeysOperation) }},
	OpTypeUpgradeAccountCycles:        {"upgrade_account_cycles", func() BaseOperation { return new(UpgradeAccountCyclesOperation) }},
	OpTypeSetStartingCycleAssetAmount: {"set_starting_cycle_asset_amount", func() BaseOperation { return new(SetStartingCycleAssetAmountOperation) }},
	OpTypeSetChainAuthority:           {"set_chain_authority", func() BaseOperation { return new(SetChainAuthorityOperation) }},
}

func (t OpType) Valid() bool {
	return t < opTypeCount
}

func (t OpType) String() string {
	if t.Valid() {
		return opRegistry[t].name
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// NewBaseOperation returns a zero value of the tagged variant.
func NewBaseOperation(t OpType) (BaseOperation, error) {
	if !t.Valid() {
		return nil, ErrUnknownOpType
	}
	return opRegistry[t].make(), nil
}

// OpTypeFromName maps a catalog name back to its tag.
func OpTypeFromName(name string) (OpType, bool) {
	for t := OpType(0); t < opTypeCount; t++ {
		if opRegistry[t].name == name {
			return t, true
		}
	}
	return 0, false
}

// OpNames lists the catalog in tag order.
func OpNames() []string {
	names := make([]string, opTypeCount)
	for t := OpType(0); t < opTypeCount; t++ {
		names[t] = opRegistry[t].name
	}
	return names
}
