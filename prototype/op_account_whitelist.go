package prototype

// Listing bitmask values for AccountWhitelistOperation.
const (
	NoListing           uint8 = 0
	WhiteListed         uint8 = 1 << 0
	BlackListed         uint8 = 1 << 1
	WhiteAndBlackListed uint8 = WhiteListed | BlackListed
)

// AccountWhitelistOperation records the authorizing account's opinion of
// another account. Assets enforcing whitelists consult these opinions.
type AccountWhitelistOperation struct {
	Fee                Asset             `json:"fee"`
	AuthorizingAccount AccountIdType     `json:"authorizing_account"`
	AccountToList      AccountIdType     `json:"account_to_list"`
	NewListing         uint8             `json:"new_listing"`
	Extensions         []FutureExtension `json:"extensions"`
}

func (m *AccountWhitelistOperation) OpType() OpType {
	return OpTypeAccountWhitelist
}

func (m *AccountWhitelistOperation) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if err := m.Fee.validateFee(); err != nil {
		return err
	}
	if m.NewListing >= 0x4 {
		return ErrListingOutOfRange
	}
	return nil
}

func (m *AccountWhitelistOperation) GetRequiredActive(auths *map[AccountIdType]bool) {
	(*auths)[m.AuthorizingAccount] = true
}

func (m *AccountWhitelistOperation) GetRequiredOwner(auths *map[AccountIdType]bool) {
}

func (m *AccountWhitelistOperation) FeePayer() AccountIdType {
	return m.AuthorizingAccount
}

func (m *AccountWhitelistOperation) GetFee() Asset {
	return m.Fee
}

func (m *AccountWhitelistOperation) CalculateFee(schedule *FeeSchedule) (*Asset, error) {
	return fixedFee(schedule.AccountWhitelist.Fee)
}
