// +build devnet

package constants

const (
	ClientName = "dascoin-go-devnet"

	DefaultStartingCycleAssetAmount = 10000

	MembershipAnnualSeconds = 60 * 60
)
