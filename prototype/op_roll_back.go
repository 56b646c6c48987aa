package prototype

// SetRollBackEnabledOperation toggles whether roll_back_public_keys may
// later target the account.
type SetRollBackEnabledOperation struct {
	Fee             Asset             `json:"fee"`
	Account         AccountIdType     `json:"account"`
	RollBackEnabled bool              `json:"roll_back_enabled"`
	Extensions      []FutureExtension `json:"extensions"`
}

func (m *SetRollBackEnabledOperation) OpType() OpType {
	return OpTypeSetRollBackEnabled
}

func (m *SetRollBackEnabledOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *SetRollBackEnabledOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.Account] = true
}

func (m *SetRollBackEnabledOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *SetRollBackEnabledOperation) FeePayer() AccountIdType {
	return m.Account
}

func (m *SetRollBackEnabledOperation) GetFee() Asset {
	return m.Fee
}

func (m *SetRollBackEnabledOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.SetRollBackEnabled
	return NewAsset(0), nil
}

// RollBackPublicKeysOperation reverts the target account to the authorities
// saved by its last key change. The signer is the license administrator,
// not the target: this is the recovery path for keys the holder lost
// control of.
type RollBackPublicKeysOperation struct {
	Fee              Asset             `json:"fee"`
	AuthorityAccount AccountIdType     `json:"authority_account"`
	Account          AccountIdType     `json:"account"`
	Extensions       []FutureExtension `json:"extensions"`
}

func (m *RollBackPublicKeysOperation) OpType() OpType {
	return OpTypeRollBackPublicKeys
}

func (m *RollBackPublicKeysOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *RollBackPublicKeysOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.AuthorityAccount] = true
}

func (m *RollBackPublicKeysOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *RollBackPublicKeysOperation) FeePayer() AccountIdType {
	return m.AuthorityAccount
}

func (m *RollBackPublicKeysOperation) GetFee() Asset {
	return m.Fee
}

func (m *RollBackPublicKeysOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.RollBackPublicKeys
	return NewAsset(0), nil
}
