package app

import (
	"fmt"

	"github.com/dascoin/dascoin-go/app/table"
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
)

// TrxContext is the per-transaction working state: the receipt under
// construction, the session the transaction writes into, and the authority
// checking seeded from the carried signee keys.
type TrxContext struct {
	Wrapper *prototype.TransactionWrapper
	db      iservices.IDatabaseService
	control *Controller
}

func NewTrxContext(wrapper *prototype.TransactionWrapper, db iservices.IDatabaseService, control *Controller) *TrxContext {
	return &TrxContext{Wrapper: wrapper, db: db, control: control}
}

// VerifyAuthority checks every operation's owner and active requirement
// against the transaction's signees. It reads pre-transaction state, so it
// must run before the first evaluator.
func (p *TrxContext) VerifyAuthority() {
	err := p.Wrapper.SigTrx.VerifyAuthority(
		constants.MaxSigCheckDepth,
		p.control.fetcher.GetActive,
		p.control.fetcher.GetOwner,
	)
	mustNoError(err, "authority check failed")
}

// RequireActiveAuth answers whether the carried signees satisfy one
// account's active authority. Evaluator-level helpers use it for checks
// outside the per-operation requirement sets.
func (p *TrxContext) RequireActiveAuth(id prototype.AccountIdType) (err error) {
	defer func() {
		if ret := recover(); ret != nil {
			err = fmt.Errorf("%v", ret)
		}
	}()

	s := &prototype.SignState{}
	s.Init(p.Wrapper.SigTrx.Signees, constants.MaxSigCheckDepth,
		p.control.fetcher.GetActive, p.control.fetcher.GetOwner)
	if !s.CheckAuthorityByAccount(id, prototype.Active) {
		return fmt.Errorf("active authority of account %d not satisfied", id)
	}
	return nil
}

// ChargeFee deducts fee from payer's balance and totals it on the receipt.
func (p *TrxContext) ChargeFee(payer prototype.AccountIdType, fee *prototype.Asset) {
	if fee == nil || fee.Amount == 0 {
		return
	}
	wrap := table.NewAccountWrap(p.db, payer)
	opAssert(wrap.CheckExist(), "fee payer account not found")
	mustNoError(wrap.Modify(func(r *table.AccountRecord) {
		opAssertE(r.Balance.Sub(fee), fmt.Sprintf("fee of account %d", payer))
	}), "fee deduction failed")
	p.Wrapper.Receipt.FeePaid += fee.Amount
}

// AddOpReceipt appends one operation's outcome to the receipt.
func (p *TrxContext) AddOpReceipt(op prototype.BaseOperation, status uint32, errInfo string) {
	p.Wrapper.Receipt.OpResults = append(p.Wrapper.Receipt.OpResults, prototype.OperationReceipt{
		Status:    status,
		OpType:    op.OpType().String(),
		ErrorInfo: errInfo,
	})
}
