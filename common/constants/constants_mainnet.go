// +build !testnet,!devnet,!tests

package constants

const (
	ClientName = "dascoin-go"

	// cycles granted to every new wallet or custodian account, unless the
	// root authority has changed the chain parameter
	DefaultStartingCycleAssetAmount = 100

	// membership bought by account_upgrade without the lifetime flag
	MembershipAnnualSeconds = 365 * 24 * 60 * 60
)
