package prototype

// SetStartingCycleAssetAmountOperation changes the cycle amount granted to
// every newly created wallet or custodian account. The issuer must hold the
// root chain authority.
type SetStartingCycleAssetAmountOperation struct {
	Fee        Asset             `json:"fee"`
	Issuer     AccountIdType     `json:"issuer"`
	NewAmount  uint32            `json:"new_amount"`
	Extensions []FutureExtension `json:"extensions"`
}

func (m *SetStartingCycleAssetAmountOperation) OpType() OpType {
	return OpTypeSetStartingCycleAssetAmount
}

func (m *SetStartingCycleAssetAmountOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *SetStartingCycleAssetAmountOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.Issuer] = true
}

func (m *SetStartingCycleAssetAmountOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *SetStartingCycleAssetAmountOperation) FeePayer() AccountIdType {
	return m.Issuer
}

func (m *SetStartingCycleAssetAmountOperation) GetFee() Asset {
	return m.Fee
}

func (m *SetStartingCycleAssetAmountOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.SetStartingCycleAssetAmount
	return NewAsset(0), nil
}

// SetChainAuthorityOperation assigns a named administrative role to an
// account. The issuer must hold the root chain authority.
type SetChainAuthorityOperation struct {
	Fee        Asset             `json:"fee"`
	Issuer     AccountIdType     `json:"issuer"`
	Account    AccountIdType     `json:"account"`
	Kind       string            `json:"kind"`
	Extensions []FutureExtension `json:"extensions"`
}

func (m *SetChainAuthorityOperation) OpType() OpType {
	return OpTypeSetChainAuthority
}

func (m *SetChainAuthorityOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if err := m.Fee.validateFee(); err != nil {
		return err
	}
	return ValidateChainAuthorityKind(m.Kind)
}

func (m *SetChainAuthorityOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.Issuer] = true
}

func (m *SetChainAuthorityOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *SetChainAuthorityOperation) FeePayer() AccountIdType {
	return m.Issuer
}

func (m *SetChainAuthorityOperation) GetFee() Asset {
	return m.Fee
}

func (m *SetChainAuthorityOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.SetChainAuthority
	return NewAsset(0), nil
}
