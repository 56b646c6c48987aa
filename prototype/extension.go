package prototype

import "bytes"

// VoidType is the reserved null extension slot.
type VoidType struct{}

// FutureExtension is a placeholder element for extension sets that define no
// slots yet.
type FutureExtension struct{}

//
// Extension records are fixed, ordered lists of optional slots. The binary
// form is a slot count followed by, per present slot, its index and a
// length-prefixed payload, indices strictly ascending. Decoders skip
// payloads of indices they do not know, so records from newer chains load
// on older code with the unknown slots dropped. New slots append, never
// reorder.
//

type extSlot struct {
	index   uint64
	payload []byte
}

func packSlots(w *bytes.Buffer, slots []extSlot) {
	packUvarint(w, uint64(len(slots)))
	for _, s := range slots {
		packUvarint(w, s.index)
		packBytes(w, s.payload)
	}
}

// unpackSlots hands each known slot payload to visit and skips the rest.
// A known payload must be consumed exactly.
func unpackSlots(u *unpacker, maxKnown uint64, visit func(index uint64, payload *unpacker) error) error {
	count, err := u.uvarint()
	if err != nil {
		return err
	}
	var prev uint64
	for i := uint64(0); i < count; i++ {
		idx, err := u.uvarint()
		if err != nil {
			return err
		}
		if i > 0 && idx <= prev {
			return ErrExtensionOrder
		}
		prev = idx

		payload, err := u.bytes()
		if err != nil {
			return err
		}
		if idx > maxKnown {
			continue
		}
		p := &unpacker{data: payload}
		if err := visit(idx, p); err != nil {
			return err
		}
		if !p.empty() {
			return ErrMalformedExtension
		}
	}
	return nil
}

// AccountCreateExtensions is the append-only slot record of account_create.
// Slots: 0 reserved null marker, 1 owner special authority, 2 active
// special authority, 3 buyback options.
type AccountCreateExtensions struct {
	NullExt                *VoidType              `json:"null_ext,omitempty"`
	OwnerSpecialAuthority  *SpecialAuthority      `json:"owner_special_authority,omitempty"`
	ActiveSpecialAuthority *SpecialAuthority      `json:"active_special_authority,omitempty"`
	BuybackOptions         *BuybackAccountOptions `json:"buyback_options,omitempty"`
}

func (m *AccountCreateExtensions) Validate() error {
	if m.OwnerSpecialAuthority != nil {
		if err := m.OwnerSpecialAuthority.Validate(); err != nil {
			return err
		}
	}
	if m.ActiveSpecialAuthority != nil {
		if err := m.ActiveSpecialAuthority.Validate(); err != nil {
			return err
		}
	}
	if m.BuybackOptions != nil {
		if m.OwnerSpecialAuthority != nil || m.ActiveSpecialAuthority != nil {
			return ErrBuybackWithSpecial
		}
		if err := m.BuybackOptions.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *AccountCreateExtensions) Pack() []byte {
	var w bytes.Buffer
	m.packTo(&w)
	return w.Bytes()
}

func (m *AccountCreateExtensions) packTo(w *bytes.Buffer) {
	var slots []extSlot
	if m.NullExt != nil {
		slots = append(slots, extSlot{index: 0})
	}
	if m.OwnerSpecialAuthority != nil {
		slots = append(slots, extSlot{1, packSpecialAuthority(m.OwnerSpecialAuthority)})
	}
	if m.ActiveSpecialAuthority != nil {
		slots = append(slots, extSlot{2, packSpecialAuthority(m.ActiveSpecialAuthority)})
	}
	if m.BuybackOptions != nil {
		slots = append(slots, extSlot{3, packBuybackOptions(m.BuybackOptions)})
	}
	packSlots(w, slots)
}

func (m *AccountCreateExtensions) Unpack(data []byte) error {
	u := &unpacker{data: data}
	if err := m.unpackFrom(u); err != nil {
		return err
	}
	if !u.empty() {
		return ErrMalformedExtension
	}
	return nil
}

func (m *AccountCreateExtensions) unpackFrom(u *unpacker) error {
	*m = AccountCreateExtensions{}
	return unpackSlots(u, 3, func(idx uint64, p *unpacker) error {
		switch idx {
		case 0:
			m.NullExt = &VoidType{}
		case 1:
			sa, err := unpackSpecialAuthority(p)
			if err != nil {
				return err
			}
			m.OwnerSpecialAuthority = sa
		case 2:
			sa, err := unpackSpecialAuthority(p)
			if err != nil {
				return err
			}
			m.ActiveSpecialAuthority = sa
		case 3:
			bbo, err := unpackBuybackOptions(p)
			if err != nil {
				return err
			}
			m.BuybackOptions = bbo
		}
		return nil
	})
}

// AccountUpdateExtensions is the append-only slot record of account_update.
// Slots: 0 reserved null marker, 1 owner special authority, 2 active
// special authority.
type AccountUpdateExtensions struct {
	NullExt                *VoidType         `json:"null_ext,omitempty"`
	OwnerSpecialAuthority  *SpecialAuthority `json:"owner_special_authority,omitempty"`
	ActiveSpecialAuthority *SpecialAuthority `json:"active_special_authority,omitempty"`
}

func (m *AccountUpdateExtensions) Validate() error {
	if m.OwnerSpecialAuthority != nil {
		if err := m.OwnerSpecialAuthority.Validate(); err != nil {
			return err
		}
	}
	if m.ActiveSpecialAuthority != nil {
		if err := m.ActiveSpecialAuthority.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *AccountUpdateExtensions) hasAnySlot() bool {
	return m.NullExt != nil ||
		m.OwnerSpecialAuthority != nil ||
		m.ActiveSpecialAuthority != nil
}

func (m *AccountUpdateExtensions) Pack() []byte {
	var w bytes.Buffer
	m.packTo(&w)
	return w.Bytes()
}

func (m *AccountUpdateExtensions) packTo(w *bytes.Buffer) {
	var slots []extSlot
	if m.NullExt != nil {
		slots = append(slots, extSlot{index: 0})
	}
	if m.OwnerSpecialAuthority != nil {
		slots = append(slots, extSlot{1, packSpecialAuthority(m.OwnerSpecialAuthority)})
	}
	if m.ActiveSpecialAuthority != nil {
		slots = append(slots, extSlot{2, packSpecialAuthority(m.ActiveSpecialAuthority)})
	}
	packSlots(w, slots)
}

func (m *AccountUpdateExtensions) Unpack(data []byte) error {
	u := &unpacker{data: data}
	if err := m.unpackFrom(u); err != nil {
		return err
	}
	if !u.empty() {
		return ErrMalformedExtension
	}
	return nil
}

func (m *AccountUpdateExtensions) unpackFrom(u *unpacker) error {
	*m = AccountUpdateExtensions{}
	return unpackSlots(u, 2, func(idx uint64, p *unpacker) error {
		switch idx {
		case 0:
			m.NullExt = &VoidType{}
		case 1:
			sa, err := unpackSpecialAuthority(p)
			if err != nil {
				return err
			}
			m.OwnerSpecialAuthority = sa
		case 2:
			sa, err := unpackSpecialAuthority(p)
			if err != nil {
				return err
			}
			m.ActiveSpecialAuthority = sa
		}
		return nil
	})
}

func packSpecialAuthority(sa *SpecialAuthority) []byte {
	var w bytes.Buffer
	w.WriteByte(byte(sa.Type))
	if sa.Type == SpecialTopHolders && sa.TopHolders != nil {
		packUvarint(&w, uint64(sa.TopHolders.Asset))
		w.WriteByte(sa.TopHolders.NumTopHolders)
	}
	return w.Bytes()
}

func unpackSpecialAuthority(u *unpacker) (*SpecialAuthority, error) {
	t, err := u.u8()
	if err != nil {
		return nil, err
	}
	sa := &SpecialAuthority{Type: SpecialAuthorityType(t)}
	switch sa.Type {
	case SpecialNone:
	case SpecialTopHolders:
		asset, err := u.uvarint()
		if err != nil {
			return nil, err
		}
		num, err := u.u8()
		if err != nil {
			return nil, err
		}
		sa.TopHolders = &TopHoldersSpecialAuthority{
			Asset:         AssetIdType(asset),
			NumTopHolders: num,
		}
	default:
		return nil, StructuralError("unknown special authority type")
	}
	return sa, nil
}

func packBuybackOptions(b *BuybackAccountOptions) []byte {
	var w bytes.Buffer
	packUvarint(&w, uint64(b.AssetToBuy))
	packUvarint(&w, uint64(b.AssetToBuyIssuer))
	packUvarint(&w, uint64(len(b.Markets)))
	for _, m := range b.Markets {
		packUvarint(&w, uint64(m))
	}
	return w.Bytes()
}

func unpackBuybackOptions(u *unpacker) (*BuybackAccountOptions, error) {
	asset, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	issuer, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	count, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(u.remaining()) {
		return nil, ErrTruncatedData
	}
	bbo := &BuybackAccountOptions{
		AssetToBuy:       AssetIdType(asset),
		AssetToBuyIssuer: AccountIdType(issuer),
	}
	for i := uint64(0); i < count; i++ {
		m, err := u.uvarint()
		if err != nil {
			return nil, err
		}
		bbo.Markets = append(bbo.Markets, AssetIdType(m))
	}
	return bbo, nil
}

// packFutureExtensions handles the extension sets that define no slots yet.
func packFutureExtensions(w *bytes.Buffer, exts []FutureExtension) {
	packUvarint(w, uint64(len(exts)))
}

func unpackFutureExtensions(u *unpacker) ([]FutureExtension, error) {
	count, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	// elements carry no payload bytes, so bound the count itself
	if count > 255 {
		return nil, ErrMalformedExtension
	}
	if count == 0 {
		return nil, nil
	}
	return make([]FutureExtension, count), nil
}
