package prototype

// AccountTransferOperation hands an account over to a new owner. Applying
// it clears whitelist opinions held about the account; blacklist opinions
// survive the transfer.
type AccountTransferOperation struct {
	Fee        Asset             `json:"fee"`
	AccountId  AccountIdType     `json:"account_id"`
	NewOwner   AccountIdType     `json:"new_owner"`
	Extensions []FutureExtension `json:"extensions"`
}

func (m *AccountTransferOperation) OpType() OpType {
	return OpTypeAccountTransfer
}

func (m *AccountTransferOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *AccountTransferOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.AccountId] = true
}

func (m *AccountTransferOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *AccountTransferOperation) FeePayer() AccountIdType {
	return m.AccountId
}

func (m *AccountTransferOperation) GetFee() Asset {
	return m.Fee
}

func (m *AccountTransferOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	return fixedFee(schedule.AccountTransfer.Fee)
}
