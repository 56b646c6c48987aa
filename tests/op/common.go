package op

import (
	"testing"

	"github.com/dascoin/dascoin-go/prototype"
	. "github.com/dascoin/dascoin-go/sandbox"
	"github.com/stretchr/testify/assert"
)

// feeOf prices an operation against the sandbox's current fee schedule.
func feeOf(d *Sandbox, op *prototype.Operation) int64 {
	required, err := prototype.GetBaseOperation(op).CalculateFee(d.Controller().FeeSchedule())
	if err != nil {
		panic(err)
	}
	return required.Amount
}

// ensureLifetime buys the lifetime membership unless the account holds one
// already.
func ensureLifetime(t *testing.T, acc *SandboxAccount) {
	if acc.Get().LifetimeMember {
		return
	}
	a := assert.New(t)
	fee := feeOf(acc.D, AccountUpgrade(acc.Id(), true, 0))
	a.NoError(acc.SendTrx(AccountUpgrade(acc.Id(), true, fee)))
	a.True(acc.Get().LifetimeMember)
}

// keyAuth builds a single-key authority around the sandbox key of name.
func keyAuth(d *Sandbox, name string) *prototype.Authority {
	return prototype.NewAuthorityFromPubKey(d.KeyOf(name))
}
