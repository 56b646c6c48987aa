package prototype

// TetherAccountsOperation links a wallet account with a vault account.
// Linking is a two-party action: neither side can force it, so the active
// authority of both accounts is required.
type TetherAccountsOperation struct {
	Fee           Asset             `json:"fee"`
	WalletAccount AccountIdType     `json:"wallet_account"`
	VaultAccount  AccountIdType     `json:"vault_account"`
	Extensions    []FutureExtension `json:"extensions"`
}

func (m *TetherAccountsOperation) OpType() OpType {
	return OpTypeTetherAccounts
}

func (m *TetherAccountsOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	return m.Fee.validateFee()
}

func (m *TetherAccountsOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.WalletAccount] = true
	(*auths)[m.VaultAccount] = true
}

func (m *TetherAccountsOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *TetherAccountsOperation) FeePayer() AccountIdType {
	return m.WalletAccount
}

func (m *TetherAccountsOperation) GetFee() Asset {
	return m.Fee
}

func (m *TetherAccountsOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	_ = schedule.TetherAccounts
	return NewAsset(0), nil
}
