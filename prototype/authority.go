package prototype

// AccountAuth weights another account's authority inside an Authority.
type AccountAuth struct {
	Account AccountIdType `json:"account"`
	Weight  uint16        `json:"weight"`
}

// KeyAuth weights a single public key inside an Authority.
type KeyAuth struct {
	Key    *PublicKeyType `json:"key"`
	Weight uint16         `json:"weight"`
}

// Authority is a weighted-threshold structure over keys and accounts. It is
// satisfied when the weights of proven entries reach WeightThreshold.
type Authority struct {
	WeightThreshold uint32        `json:"weight_threshold"`
	AccountAuths    []AccountAuth `json:"account_auths"`
	KeyAuths        []KeyAuth     `json:"key_auths"`
}

func NewAuthorityFromPubKey(pubKey *PublicKeyType) *Authority {
	return &Authority{
		WeightThreshold: 1,
		KeyAuths:        []KeyAuth{{Key: pubKey, Weight: 1}},
	}
}

func NewAuthorityFromAccount(account AccountIdType) *Authority {
	return &Authority{
		WeightThreshold: 1,
		AccountAuths:    []AccountAuth{{Account: account, Weight: 1}},
	}
}

func (m *Authority) NumAuths() int {
	return len(m.AccountAuths) + len(m.KeyAuths)
}

func (m *Authority) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if m.WeightThreshold == 0 {
		return ErrZeroThreshold
	}
	if m.NumAuths() == 0 {
		return ErrEmptyAuthority
	}
	for i := range m.KeyAuths {
		if err := m.KeyAuths[i].Key.Validate(); err != nil {
			return err
		}
	}
	return nil
}
