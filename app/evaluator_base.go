package app

import (
	"github.com/dascoin/dascoin-go/iservices"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/pkg/errors"
)

// Evaluator state checks panic; the transaction pipeline recovers them into
// the receipt. A bare condition failure is a state conflict by definition,
// since structural problems were rejected by Validate long before Apply.

func opAssert(b bool, val string) {
	if !b {
		panic(prototype.StateConflictError(val))
	}
}

func opAssertE(err error, val string) {
	if err != nil {
		panic(errors.WithMessage(err, val))
	}
}

func mustNoError(err error, val string) {
	if err != nil {
		panic(errors.WithMessage(err, val))
	}
}

// ApplyContext carries what evaluators need: the state view of the running
// transaction and the owning controller.
type ApplyContext struct {
	db      iservices.IDatabaseService
	control *Controller
	trxCtx  *TrxContext
}

type BaseEvaluator interface {
	Apply()
}

// GetBaseEvaluator dispatches an operation to its evaluator. The switch is
// total over the catalog; a variant without an evaluator is a programming
// error.
func GetBaseEvaluator(ctx *ApplyContext, op *prototype.Operation) BaseEvaluator {
	switch op := prototype.GetBaseOperation(op).(type) {
	case *prototype.AccountCreateOperation:
		return &AccountCreateEvaluator{ctx: ctx, op: op}
	case *prototype.AccountUpdateOperation:
		return &AccountUpdateEvaluator{ctx: ctx, op: op}
	case *prototype.AccountWhitelistOperation:
		return &AccountWhitelistEvaluator{ctx: ctx, op: op}
	case *prototype.AccountUpgradeOperation:
		return &AccountUpgradeEvaluator{ctx: ctx, op: op}
	case *prototype.AccountTransferOperation:
		return &AccountTransferEvaluator{ctx: ctx, op: op}
	case *prototype.TetherAccountsOperation:
		return &TetherAccountsEvaluator{ctx: ctx, op: op}
	case *prototype.ChangePublicKeysOperation:
		return &ChangePublicKeysEvaluator{ctx: ctx, op: op}
	case *prototype.SetRollBackEnabledOperation:
		return &SetRollBackEnabledEvaluator{ctx: ctx, op: op}
	case *prototype.RollBackPublicKeysOperation:
		return &RollBackPublicKeysEvaluator{ctx: ctx, op: op}
	case *prototype.UpgradeAccountCyclesOperation:
		return &UpgradeAccountCyclesEvaluator{ctx: ctx, op: op}
	case *prototype.SetStartingCycleAssetAmountOperation:
		return &SetStartingCycleAssetAmountEvaluator{ctx: ctx, op: op}
	case *prototype.SetChainAuthorityOperation:
		return &SetChainAuthorityEvaluator{ctx: ctx, op: op}
	default:
		panic("no matchable evaluator")
	}
}
