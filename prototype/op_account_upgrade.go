package prototype

// AccountUpgradeOperation buys a membership for the target account: one
// more year, or lifetime. Lifetime is final, so re-upgrading a lifetime
// member is refused at apply time.
type AccountUpgradeOperation struct {
	Fee                     Asset             `json:"fee"`
	AccountToUpgrade        AccountIdType     `json:"account_to_upgrade"`
	UpgradeToLifetimeMember bool              `json:"upgrade_to_lifetime_member"`
	Extensions              []FutureExtension `json:"extensions"`
}

func (m *AccountUpgradeOperation) OpType() OpType {
	return OpTypeAccountUpgrade
}

func (m *AccountUpgradeOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *AccountUpgradeOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.AccountToUpgrade] = true
}

func (m *AccountUpgradeOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *AccountUpgradeOperation) FeePayer() AccountIdType {
	return m.AccountToUpgrade
}

func (m *AccountUpgradeOperation) GetFee() Asset {
	return m.Fee
}

func (m *AccountUpgradeOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	p := schedule.AccountUpgrade
	if m.UpgradeToLifetimeMember {
		return fixedFee(p.MembershipLifetimeFee)
	}
	return fixedFee(p.MembershipAnnualFee)
}
