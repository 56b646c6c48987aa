package prototype

// UpgradeAccountCyclesOperation is catalogued but disabled: the cycle
// upgrade rules are not finalized, so validation rejects every instance.
// Keep the rejection unconditional until the rules land.
type UpgradeAccountCyclesOperation struct {
	Fee         Asset             `json:"fee"`
	Account     AccountIdType     `json:"account"`
	Description string            `json:"description"`
	Extensions  []FutureExtension `json:"extensions"`
}

func (m *UpgradeAccountCyclesOperation) OpType() OpType {
	return OpTypeUpgradeAccountCycles
}

func (m *UpgradeAccountCyclesOperation) Validate() error {
	return ErrCyclesUpgradeDisabled
}

func (m *UpgradeAccountCyclesOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.Account] = true
}

func (m *UpgradeAccountCyclesOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *UpgradeAccountCyclesOperation) FeePayer() AccountIdType {
	return m.Account
}

func (m *UpgradeAccountCyclesOperation) GetFee() Asset {
	return m.Fee
}

func (m *UpgradeAccountCyclesOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.UpgradeAccountCycles
	return NewAsset(0), nil
}
