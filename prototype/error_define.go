package prototype

import "github.com/pkg/errors"

//
// Operation failures fall into three classes. Structural problems are
// detectable from the operation value alone; state conflicts need the
// current ledger; disabled operations never pass. Each class is a typed
// string so callers can classify a failure without string matching.
//

type StructuralError string

func (e StructuralError) Error() string { return string(e) }

type StateConflictError string

func (e StateConflictError) Error() string { return string(e) }

type DisabledOperationError string

func (e DisabledOperationError) Error() string { return string(e) }

// IsStructural reports whether err, unwrapped, is a StructuralError.
func IsStructural(err error) bool {
	_, ok := errors.Cause(err).(StructuralError)
	return ok
}

func IsStateConflict(err error) bool {
	_, ok := errors.Cause(err).(StateConflictError)
	return ok
}

func IsDisabledOperation(err error) bool {
	_, ok := errors.Cause(err).(DisabledOperationError)
	return ok
}

var (
	ErrNpe             = StructuralError("null pointer")
	ErrKeyLength       = StructuralError("key length error")
	ErrPubKeyFormatErr = StructuralError("public key format error")

	ErrNegativeFee        = StructuralError("fee amount is negative")
	ErrAccountNameLength  = StructuralError("account name length out of range")
	ErrAccountNameFormat  = StructuralError("account name has invalid characters or hyphen placement")
	ErrPercentOutOfRange  = StructuralError("percentage exceeds 10000 basis points")
	ErrListingOutOfRange  = StructuralError("listing bitmask must be below 4")
	ErrEmptyAuthority     = StructuralError("authority carries no keys or accounts")
	ErrZeroThreshold      = StructuralError("authority weight threshold is zero")
	ErrVoteCountMismatch  = StructuralError("vote counters exceed votes of that kind")
	ErrNoUpdateAction     = StructuralError("update changes nothing")
	ErrTempAccountUpdate  = StructuralError("the temp account cannot be updated")
	ErrUnknownAccountKind = StructuralError("unknown account kind")
	ErrUnknownAuthorityKind = StructuralError("unknown chain authority kind")
	ErrBuybackWithSpecial   = StructuralError("buyback accounts cannot carry special authorities")
	ErrExtensionOrder       = StructuralError("extension slots out of order")
	ErrMalformedExtension   = StructuralError("extension record is malformed")
	ErrUnknownOpType        = StructuralError("unknown operation type")
	ErrTruncatedData        = StructuralError("data truncated")

	ErrAssetMismatch = StructuralError("asset ids differ")
	ErrAssetOverflow = StructuralError("asset amount overflow")
	ErrFeeOverflow   = StructuralError("fee calculation overflow")

	ErrInsufficientBalance = StateConflictError("insufficient balance")
	ErrMissingAuthority    = StateConflictError("missing required authority")

	ErrCyclesUpgradeDisabled = DisabledOperationError("cycle upgrades are disabled")
)
