package prototype

import "github.com/pkg/errors"

// AccountUpdateOperation changes any subset of an account's owner or active
// authority, its options, or its extension-borne special authorities.
// Absent fields leave prior state untouched.
type AccountUpdateOperation struct {
	Fee        Asset                   `json:"fee"`
	Account    AccountIdType           `json:"account"`
	Owner      *Authority              `json:"owner,omitempty"`
	Active     *Authority              `json:"active,omitempty"`
	NewOptions *AccountOptions         `json:"new_options,omitempty"`
	Extensions AccountUpdateExtensions `json:"extensions"`
}

func (m *AccountUpdateOperation) OpType() OpType {
	return OpTypeAccountUpdate
}

// isOwnerUpdate is the security-relevant branch: an owner field or an owner
// special authority raises the requirement from active to owner. The answer
// must be all-or-nothing, never both.
func (m *AccountUpdateOperation) isOwnerUpdate() bool {
	return m.Owner != nil || m.Extensions.OwnerSpecialAuthority != nil
}

func (m *AccountUpdateOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if err := m.Fee.validateFee(); err != nil {
		return err
	}
	if m.Account == TempAccountId {
		return ErrTempAccountUpdate
	}
	if m.Owner == nil && m.Active == nil && m.NewOptions == nil &&
		!m.Extensions.hasAnySlot() {
		return ErrNoUpdateAction
	}
	if m.Owner != nil {
		if err := m.Owner.Validate(); err != nil {
			return errors.WithMessage(err, "owner")
		}
	}
	if m.Active != nil {
		if err := m.Active.Validate(); err != nil {
			return errors.WithMessage(err, "active")
		}
	}
	if m.NewOptions != nil {
		if err := m.NewOptions.Validate(); err != nil {
			return errors.WithMessage(err, "new_options")
		}
	}
	return m.Extensions.Validate()
}

func (m *AccountUpdateOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	if !m.isOwnerUpdate() {
		(*auths)[m.Account] = true
	}
}

func (m *AccountUpdateOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
	if m.isOwnerUpdate() {
		(*auths)[m.Account] = true
	}
}

func (m *AccountUpdateOperation) FeePayer() AccountIdType {
	return m.Account
}

func (m *AccountUpdateOperation) GetFee() Asset {
	return m.Fee
}

// CalculateFee is the only variable-size fee in the family: authority
// updates can carry arbitrarily large multi-key structures, so the charge
// grows per started kibibyte of the packed operation.
func (m *AccountUpdateOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	p := schedule.AccountUpdate
	size := uint64(len(PackOperation(m)))
	chunks := (size + 1023) / 1024
	return feeFromParts(p.Fee, p.PricePerKbyte, chunks)
}
