package app

import (
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
)

// GenesisAccount seeds one account at chain initialization. The key is the
// WIF form of a public key; it becomes the sole entry of both the owner and
// the active authority.
type GenesisAccount struct {
	Name           string
	Kind           prototype.AccountKind
	PubKey         string
	Balance        int64
	LifetimeMember bool
}

// Genesis describes the initial chain state. Accounts receive ids in listed
// order, starting at the first unreserved id.
type Genesis struct {
	Timestamp                prototype.TimePointSec
	StartingCycleAssetAmount uint32
	Accounts                 []GenesisAccount
	ChainAuthorities         map[string]string // authority kind -> account name
}

// DefaultGenesis seeds the root account holding the entire initial supply,
// plus the operational accounts the chain cannot run without: a registrar
// and a license administrator.
func DefaultGenesis() *Genesis {
	return &Genesis{
		Timestamp:                constants.GenesisTime,
		StartingCycleAssetAmount: constants.DefaultStartingCycleAssetAmount,
		Accounts: []GenesisAccount{
			{
				Name:           constants.GenesisRootAccount,
				Kind:           prototype.KindSpecial,
				PubKey:         constants.GenesisRootPubKey,
				Balance:        constants.GenesisInitSupply,
				LifetimeMember: true,
			},
			{
				Name:           constants.GenesisRegistrarAccount,
				Kind:           prototype.KindSpecial,
				PubKey:         constants.GenesisRegistrarPubKey,
				LifetimeMember: true,
			},
			{
				Name:           constants.GenesisLicenseAdminAccount,
				Kind:           prototype.KindSpecial,
				PubKey:         constants.GenesisLicenseAdminPubKey,
				LifetimeMember: true,
			},
		},
		ChainAuthorities: map[string]string{
			prototype.AuthorityRoot:                 constants.GenesisRootAccount,
			prototype.AuthorityRegistrar:            constants.GenesisRegistrarAccount,
			prototype.AuthorityLicenseAdministrator: constants.GenesisLicenseAdminAccount,
		},
	}
}
