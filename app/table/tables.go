package table

import (
	"sort"

	"github.com/dascoin/dascoin-go/prototype"
	mapset "github.com/deckarep/golang-set"
)

// AccountRecord is the ledger state of one account. Records serialize to
// JSON under an id-ordered key, so range scans walk accounts in
// registration order.
type AccountRecord struct {
	Id              prototype.AccountIdType   `json:"id"`
	Name            string                    `json:"name"`
	Kind            prototype.AccountKind     `json:"kind"`
	Owner           *prototype.Authority      `json:"owner"`
	Active          *prototype.Authority      `json:"active"`
	Options         *prototype.AccountOptions `json:"options,omitempty"`
	Registrar       prototype.AccountIdType   `json:"registrar"`
	Referrer        prototype.AccountIdType   `json:"referrer"`
	ReferrerPercent uint16                    `json:"referrer_percent"`
	CreatedAt       prototype.TimePointSec    `json:"created_at"`

	// special authorities attached through operation extensions
	OwnerSpecial  *prototype.SpecialAuthority `json:"owner_special,omitempty"`
	ActiveSpecial *prototype.SpecialAuthority `json:"active_special,omitempty"`

	LifetimeMember       bool                   `json:"lifetime_member"`
	MembershipExpiration prototype.TimePointSec `json:"membership_expiration"`

	// listing opinions held about this account, by authorizer id
	WhitelistingAccounts []prototype.AccountIdType `json:"whitelisting_accounts,omitempty"`
	BlacklistingAccounts []prototype.AccountIdType `json:"blacklisting_accounts,omitempty"`

	// tether partners; wallets list vaults and vaults list wallets
	TetheredWallets []prototype.AccountIdType `json:"tethered_wallets,omitempty"`
	TetheredVaults  []prototype.AccountIdType `json:"tethered_vaults,omitempty"`

	// key rotation history for roll_back_public_keys
	RollBackEnabled   bool                 `json:"roll_back_enabled"`
	SavedOwner        *prototype.Authority `json:"saved_owner,omitempty"`
	SavedActive       *prototype.Authority `json:"saved_active,omitempty"`
	OwnerChangeCount  uint32               `json:"owner_change_count"`
	ActiveChangeCount uint32               `json:"active_change_count"`

	Balance      prototype.Asset `json:"balance"`
	CycleBalance uint64          `json:"cycle_balance"`
}

// IsMember reports whether the account holds a live membership at now.
func (r *AccountRecord) IsMember(now prototype.TimePointSec) bool {
	return r.LifetimeMember || r.MembershipExpiration > now
}

// IsTetheredTo reports whether partner is already on the record's tether
// lists.
func (r *AccountRecord) IsTetheredTo(partner prototype.AccountIdType) bool {
	return IdSet(r.TetheredWallets).Contains(partner) ||
		IdSet(r.TetheredVaults).Contains(partner)
}

// GlobalProperties is the chain-level parameter row.
type GlobalProperties struct {
	HeadBlockTime            prototype.TimePointSec              `json:"head_block_time"`
	NextAccountId            prototype.AccountIdType             `json:"next_account_id"`
	StartingCycleAssetAmount uint32                              `json:"starting_cycle_asset_amount"`
	ChainAuthorities         map[string]prototype.AccountIdType `json:"chain_authorities"`
}

// IdSet loads ids into a set for membership tests and opinion updates.
func IdSet(ids []prototype.AccountIdType) mapset.Set {
	s := mapset.NewThreadUnsafeSet()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// SetIds flattens a set back to the sorted slice form records store.
// Sorting keeps the serialized record deterministic.
func SetIds(s mapset.Set) []prototype.AccountIdType {
	if s.Cardinality() == 0 {
		return nil
	}
	ids := make([]prototype.AccountIdType, 0, s.Cardinality())
	for v := range s.Iter() {
		ids = append(ids, v.(prototype.AccountIdType))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
