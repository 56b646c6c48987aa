package prototype

import (
	"encoding/json"
	"math"

	"github.com/dascoin/dascoin-go/common/constants"
)

//
// Every catalog variant owns a fee parameter struct, even when it is empty:
// governance updates the schedule per variant, and an empty struct is how a
// variant declares itself free. Amounts are core-asset satoshis.
//

type AccountCreateFeeParams struct{}

type AccountUpdateFeeParams struct {
	Fee           uint64 `json:"fee"`
	PricePerKbyte uint64 `json:"price_per_kbyte"`
}

type AccountWhitelistFeeParams struct {
	Fee uint64 `json:"fee"`
}

type AccountUpgradeFeeParams struct {
	MembershipAnnualFee   uint64 `json:"membership_annual_fee"`
	MembershipLifetimeFee uint64 `json:"membership_lifetime_fee"`
}

type AccountTransferFeeParams struct {
	Fee uint64 `json:"fee"`
}

type TetherAccountsFeeParams struct{}

type ChangePublicKeysFeeParams struct{}

type SetRollBackEnabledFeeParams struct{}

type RollBackPublicKeysFeeParams struct{}

type UpgradeAccountCyclesFeeParams struct{}

type SetStartingCycleAssetAmountFeeParams struct{}

type SetChainAuthorityFeeParams struct{}

// FeeSchedule is the chain's current fee parameter set, one entry per
// catalog variant.
type FeeSchedule struct {
	AccountCreate               AccountCreateFeeParams               `json:"account_create"`
	AccountUpdate               AccountUpdateFeeParams               `json:"account_update"`
	AccountWhitelist            AccountWhitelistFeeParams            `json:"account_whitelist"`
	AccountUpgrade              AccountUpgradeFeeParams              `json:"account_upgrade"`
	AccountTransfer             AccountTransferFeeParams             `json:"account_transfer"`
	TetherAccounts              TetherAccountsFeeParams              `json:"tether_accounts"`
	ChangePublicKeys            ChangePublicKeysFeeParams            `json:"change_public_keys"`
	SetRollBackEnabled          SetRollBackEnabledFeeParams          `json:"set_roll_back_enabled"`
	RollBackPublicKeys          RollBackPublicKeysFeeParams          `json:"roll_back_public_keys"`
	UpgradeAccountCycles        UpgradeAccountCyclesFeeParams        `json:"upgrade_account_cycles"`
	SetStartingCycleAssetAmount SetStartingCycleAssetAmountFeeParams `json:"set_starting_cycle_asset_amount"`
	SetChainAuthority           SetChainAuthorityFeeParams           `json:"set_chain_authority"`
}

// DefaultFeeSchedule carries the genesis fee constants.
func DefaultFeeSchedule() *FeeSchedule {
	return &FeeSchedule{
		AccountUpdate: AccountUpdateFeeParams{
			Fee:           20 * constants.AssetPrecision,
			PricePerKbyte: constants.AssetPrecision,
		},
		AccountWhitelist: AccountWhitelistFeeParams{
			Fee: 300000,
		},
		AccountUpgrade: AccountUpgradeFeeParams{
			MembershipAnnualFee:   2000 * constants.AssetPrecision,
			MembershipLifetimeFee: 10000 * constants.AssetPrecision,
		},
		AccountTransfer: AccountTransferFeeParams{
			Fee: 500 * constants.AssetPrecision,
		},
	}
}

// LoadFeeSchedule applies governance overrides in JSON form on top of the
// genesis defaults.
func LoadFeeSchedule(data []byte) (*FeeSchedule, error) {
	schedule := DefaultFeeSchedule()
	if err := json.Unmarshal(data, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// fixedFee converts a schedule parameter to a charge.
func fixedFee(v uint64) (*Asset, error) {
	if v > math.MaxInt64 {
		return nil, ErrFeeOverflow
	}
	return NewAsset(int64(v)), nil
}

// feeFromParts computes base + perUnit*units with overflow checks.
func feeFromParts(base, perUnit, units uint64) (*Asset, error) {
	if perUnit != 0 && units > math.MaxUint64/perUnit {
		return nil, ErrFeeOverflow
	}
	variable := perUnit * units
	if base > math.MaxUint64-variable {
		return nil, ErrFeeOverflow
	}
	return fixedFee(base + variable)
}
