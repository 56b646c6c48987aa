package prototype

import "github.com/pkg/errors"

// ChangePublicKeysOperation rotates an account's keys. It follows
// account_update's owner/active semantics, but its extension set defines no
// special-authority slots, so the owner field alone decides the owner-update
// test. Applying it snapshots the previous authorities for a later
// roll_back_public_keys.
type ChangePublicKeysOperation struct {
	Fee        Asset             `json:"fee"`
	Account    AccountIdType     `json:"account"`
	Active     *Authority        `json:"active,omitempty"`
	Owner      *Authority        `json:"owner,omitempty"`
	Extensions []FutureExtension `json:"extensions"`
}

func (m *ChangePublicKeysOperation) OpType() OpType {
	return OpTypeChangePublicKeys
}

func (m *ChangePublicKeysOperation) isOwnerUpdate() bool {
	return m.Owner != nil
}

func (m *ChangePublicKeysOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if err := m.Fee.validateFee(); err != nil {
		return err
	}
	if m.Active != nil {
		if err := m.Active.Validate(); err != nil {
			return errors.WithMessage(err, "active")
		}
	}
	if m.Owner != nil {
		if err := m.Owner.Validate(); err != nil {
			return errors.WithMessage(err, "owner")
		}
	}
	return nil
}

func (m *ChangePublicKeysOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	if !m.isOwnerUpdate() {
		(*auths)[m.Account] = true
	}
}

func (m *ChangePublicKeysOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
	if m.isOwnerUpdate() {
		(*auths)[m.Account] = true
	}
}

func (m *ChangePublicKeysOperation) FeePayer() AccountIdType {
	return m.Account
}

func (m *ChangePublicKeysOperation) GetFee() Asset {
	return m.Fee
}

func (m *ChangePublicKeysOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.ChangePublicKeys
	return NewAsset(0), nil
}
