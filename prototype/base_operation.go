package prototype

// BaseOperation is the behavior set every catalog variant implements. The
// interface keeps dispatch total: a variant cannot join the catalog without
// answering validation, both authority questions, its fee payer and its fee
// formula.
type BaseOperation interface {
	OpType() OpType

	// Validate checks the structural invariants of the operation's own
	// fields. It needs no ledger state and must pass before the operation
	// reaches authority resolution or fee calculation.
	Validate() error

	// GetRequiredActive and GetRequiredOwner set the accounts whose active
	// or owner authority a carrying transaction must prove. They never
	// fail; an untouched map means no requirement beyond the fee payer's.
	GetRequiredActive(auths *map[AccountIdType]bool)
	GetRequiredOwner(auths *map[AccountIdType]bool)

	// FeePayer names the account charged for this operation. GetFee is the
	// fee that account offers; application refuses the operation when the
	// offer does not cover CalculateFee.
	FeePayer() AccountIdType
	GetFee() Asset

	// CalculateFee projects the schedule's parameters for this variant
	// onto a charge amount.
	CalculateFee(schedule *FeeSchedule) (*Asset, error)
}
