package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

type CyclesTester struct {
	acc0 *SandboxAccount
}

func (tester *CyclesTester) Test(t *testing.T, d *Sandbox) {
	tester.acc0 = d.Account("actor0")

	t.Run("disabled", d.Test(tester.disabled))
}

// The operation stays in the catalog for wire compatibility, but no
// transaction carrying it gets past validation.
func (tester *CyclesTester) disabled(t *testing.T, d *Sandbox) {
	a := assert.New(t)
	acc := tester.acc0
	cycles := acc.Get().CycleBalance

	receipt := acc.TrxReceipt(UpgradeAccountCycles(acc.Id(), "frequency upgrade"))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "cycle upgrades are disabled")
	a.Empty(receipt.OpResults)
	a.EqualValues(cycles, acc.Get().CycleBalance)

	// not even the root authority gets it through
	root := d.Account(constants.GenesisRootAccount)
	receipt = root.TrxReceipt(UpgradeAccountCycles(acc.Id(), "frequency upgrade"))
	a.EqualValues(prototype.StatusFailed, receipt.Status)
	a.Contains(receipt.ErrorInfo, "cycle upgrades are disabled")
}
