package prototype

import (
	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/pkg/errors"
)

// AccountCreateOperation registers a new account. The registrar pays the
// fee and must hold the registrar chain authority when the operation is
// applied; the referrer earns referrer_percent basis points of lifetime
// fees and must already be a member.
type AccountCreateOperation struct {
	Fee             Asset                   `json:"fee"`
	Kind            AccountKind             `json:"kind"`
	Registrar       AccountIdType           `json:"registrar"`
	Referrer        AccountIdType           `json:"referrer"`
	ReferrerPercent uint16                  `json:"referrer_percent"`
	Name            string                  `json:"name"`
	Owner           Authority               `json:"owner"`
	Active          Authority               `json:"active"`
	Options         AccountOptions          `json:"options"`
	Extensions      AccountCreateExtensions `json:"extensions"`
}

func (m *AccountCreateOperation) OpType() OpType {
	return OpTypeAccountCreate
}

func (m *AccountCreateOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if err := m.Fee.validateFee(); err != nil {
		return err
	}
	if !m.Kind.Valid() {
		return ErrUnknownAccountKind
	}
	if m.ReferrerPercent > constants.PERCENT {
		return ErrPercentOutOfRange
	}
	if err := ValidateAccountName(m.Name); err != nil {
		return err
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.WithMessage(err, "owner")
	}
	if err := m.Active.Validate(); err != nil {
		return errors.WithMessage(err, "active")
	}
	if err := m.Options.Validate(); err != nil {
		return errors.WithMessage(err, "options")
	}
	return m.Extensions.Validate()
}

func (m *AccountCreateOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.Registrar] = true
	// a buyback account needs consent of the asset issuer handing over
	// the buyback rights
	if bbo := m.Extensions.BuybackOptions; bbo != nil {
		(*auths)[bbo.AssetToBuyIssuer] = true
	}
}

func (m *AccountCreateOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *AccountCreateOperation) FeePayer() AccountIdType {
	return m.Registrar
}

func (m *AccountCreateOperation) GetFee() Asset {
	return m.Fee
}

func (m *AccountCreateOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	// account creation is deliberately free on this chain
	_ = schedule.AccountCreate
	return NewAsset(0), nil
}
