// +build testnet

package constants

const (
	ClientName = "dascoin-go-testnet"

	DefaultStartingCycleAssetAmount = 10000

	// short memberships so expiry paths are reachable on testnet
	MembershipAnnualSeconds = 24 * 60 * 60
)
