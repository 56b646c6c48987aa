// +build tests

package constants

const (
	ClientName = "dascoin-go-tests"

	DefaultStartingCycleAssetAmount = 100

	MembershipAnnualSeconds = 60 * 5
)
