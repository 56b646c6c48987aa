package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/sandbox"
)

func TestOperations(t *testing.T) {
	t.Run("account create", sandbox.NewSandboxTest(new(AccountCreateTester).Test, 3))
	t.Run("account update", sandbox.NewSandboxTest(new(AccountUpdateTester).Test, 3))
	t.Run("account whitelist", sandbox.NewSandboxTest(new(WhitelistTester).Test, 3))
	t.Run("account upgrade", sandbox.NewSandboxTest(new(UpgradeTester).Test, 3))
	t.Run("account transfer", sandbox.NewSandboxTest(new(AccountTransferTester).Test, 3))
	t.Run("tether accounts", sandbox.NewSandboxTest(new(TetherTester).Test, 3))
	t.Run("change public keys", sandbox.NewSandboxTest(new(ChangeKeysTester).Test, 3))
	t.Run("roll back public keys", sandbox.NewSandboxTest(new(RollBackTester).Test, 3))
	t.Run("chain authorities", sandbox.NewSandboxTest(new(ChainAdminTester).Test, 3))
	t.Run("upgrade account cycles", sandbox.NewSandboxTest(new(CyclesTester).Test, 1))
}
