package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateExtensionsRoundTrip(t *testing.T) {
	a := assert.New(t)

	ext := &AccountCreateExtensions{
		NullExt: &VoidType{},
		ActiveSpecialAuthority: &SpecialAuthority{
			Type:       SpecialTopHolders,
			TopHolders: &TopHoldersSpecialAuthority{Asset: 7, NumTopHolders: 5},
		},
		BuybackOptions: nil,
	}
	a.NoError(ext.Validate())

	got := &AccountCreateExtensions{}
	a.NoError(got.Unpack(ext.Pack()))
	a.Equal(ext, got)

	// empty record packs to a bare zero count
	empty := &AccountCreateExtensions{}
	a.Equal([]byte{0}, empty.Pack())
	got = &AccountCreateExtensions{}
	a.NoError(got.Unpack(empty.Pack()))
	a.Equal(empty, got)
}

func TestCreateExtensionsBuyback(t *testing.T) {
	a := assert.New(t)

	ext := &AccountCreateExtensions{
		BuybackOptions: &BuybackAccountOptions{
			AssetToBuy:       2,
			AssetToBuyIssuer: 33,
			Markets:          []AssetIdType{1, 4},
		},
	}
	a.NoError(ext.Validate())

	got := &AccountCreateExtensions{}
	a.NoError(got.Unpack(ext.Pack()))
	a.Equal(ext, got)

	ext.OwnerSpecialAuthority = &SpecialAuthority{Type: SpecialNone}
	a.Equal(ErrBuybackWithSpecial, ext.Validate())
}

func TestUpdateExtensionsRoundTrip(t *testing.T) {
	a := assert.New(t)

	ext := &AccountUpdateExtensions{
		OwnerSpecialAuthority: &SpecialAuthority{Type: SpecialNone},
	}
	a.True(ext.hasAnySlot())
	a.NoError(ext.Validate())

	got := &AccountUpdateExtensions{}
	a.NoError(got.Unpack(ext.Pack()))
	a.Equal(ext, got)

	a.False((&AccountUpdateExtensions{}).hasAnySlot())
}

func TestExtensionsSkipUnknownSlots(t *testing.T) {
	a := assert.New(t)

	// slot 2 (active special authority, none) followed by an unknown
	// slot 7 a future chain version might emit
	data := []byte{
		2, // two slots
		2, 1, 0x00, // index 2, 1-byte payload, SpecialNone
		7, 2, 0xde, 0xad, // index 7, opaque payload
	}
	ext := &AccountUpdateExtensions{}
	a.NoError(ext.Unpack(data))
	a.Nil(ext.NullExt)
	a.Nil(ext.OwnerSpecialAuthority)
	a.NotNil(ext.ActiveSpecialAuthority)
	a.Equal(SpecialNone, ext.ActiveSpecialAuthority.Type)
}

func TestExtensionsRejectDisorder(t *testing.T) {
	a := assert.New(t)

	outOfOrder := []byte{
		2,
		2, 1, 0x00,
		1, 1, 0x00,
	}
	a.Equal(ErrExtensionOrder, (&AccountUpdateExtensions{}).Unpack(outOfOrder))

	duplicate := []byte{
		2,
		1, 1, 0x00,
		1, 1, 0x00,
	}
	a.Equal(ErrExtensionOrder, (&AccountUpdateExtensions{}).Unpack(duplicate))
}

func TestExtensionsRejectMalformedPayload(t *testing.T) {
	a := assert.New(t)

	// slot 1 payload has a stray byte after the authority
	oversized := []byte{1, 1, 2, 0x00, 0x00}
	a.Equal(ErrMalformedExtension, (&AccountUpdateExtensions{}).Unpack(oversized))

	// payload claims more bytes than remain
	truncated := []byte{1, 1, 5, 0x00}
	a.Equal(ErrTruncatedData, (&AccountUpdateExtensions{}).Unpack(truncated))

	// trailing bytes after the record itself
	trailing := []byte{0, 0xff}
	a.Equal(ErrMalformedExtension, (&AccountUpdateExtensions{}).Unpack(trailing))
}
