package sandbox

import (
	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/prototype"
)

type SandboxAccount struct {
	*table.AccountWrap
	D    *Sandbox
	Name string
}

func NewSandboxAccount(name string, d *Sandbox) *SandboxAccount {
	id, _ := d.control.AccountIdByName(name)
	return &SandboxAccount{
		AccountWrap: table.NewAccountWrap(d.db, id),
		D:           d,
		Name:        name,
	}
}

func (acc *SandboxAccount) SendTrx(operations ...*prototype.Operation) error {
	return acc.D.SendTrxByAccount(acc.Name, operations...)
}

func (acc *SandboxAccount) SendTrxEx(operations ...*prototype.Operation) (*prototype.TransactionReceipt, error) {
	return acc.D.SendTrxByAccountEx(acc.Name, operations...)
}

func (acc *SandboxAccount) TrxReceipt(operations ...*prototype.Operation) *prototype.TransactionReceipt {
	return acc.D.TrxReceiptByAccount(acc.Name, operations...)
}

// GetBalance reads the core asset balance, zero when the account does not
// exist.
func (acc *SandboxAccount) GetBalance() int64 {
	if r := acc.Get(); r != nil {
		return r.Balance.Amount
	}
	return 0
}
