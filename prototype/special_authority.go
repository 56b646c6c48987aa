package prototype

// SpecialAuthorityType tags the SpecialAuthority union.
type SpecialAuthorityType uint8

const (
	SpecialNone SpecialAuthorityType = iota
	SpecialTopHolders
)

// TopHoldersSpecialAuthority delegates an authority to the largest holders
// of an asset.
type TopHoldersSpecialAuthority struct {
	Asset         AssetIdType `json:"asset"`
	NumTopHolders uint8       `json:"num_top_holders"`
}

// SpecialAuthority replaces an account's owner or active authority with a
// derived one when attached through an extension slot.
type SpecialAuthority struct {
	Type       SpecialAuthorityType        `json:"type"`
	TopHolders *TopHoldersSpecialAuthority `json:"top_holders,omitempty"`
}

func (m *SpecialAuthority) Validate() error {
	if m == nil {
		return ErrNpe
	}
	switch m.Type {
	case SpecialNone:
		return nil
	case SpecialTopHolders:
		if m.TopHolders == nil {
			return ErrNpe
		}
		if m.TopHolders.NumTopHolders == 0 {
			return StructuralError("top holders authority needs at least one holder")
		}
		return nil
	}
	return StructuralError("unknown special authority type")
}

// BuybackAccountOptions turns the created account into a buyback agent for
// an asset. The issuer of that asset co-signs the creation.
type BuybackAccountOptions struct {
	AssetToBuy       AssetIdType   `json:"asset_to_buy"`
	AssetToBuyIssuer AccountIdType `json:"asset_to_buy_issuer"`
	Markets          []AssetIdType `json:"markets"`
}

func (m *BuybackAccountOptions) Validate() error {
	if m == nil {
		return ErrNpe
	}
	for _, market := range m.Markets {
		if market == m.AssetToBuy {
			return StructuralError("buyback asset cannot be one of its own markets")
		}
	}
	return nil
}
