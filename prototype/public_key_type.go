package prototype

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/itchyny/base58-go"
)

// PublicKeyType holds a 33-byte compressed public key. The string form is
// the base58 payload with a 4-byte double-SHA256 checksum, prefixed by the
// coin symbol.
type PublicKeyType struct {
	Data []byte
}

func PublicKeyFromBytes(buffer []byte) *PublicKeyType {
	return &PublicKeyType{Data: buffer}
}

// PublicKeyFromWIF parses the DAS-prefixed string form.
//
// The base58 round trip goes through a decimal big.Int, so key data with
// leading 0x00 bytes would not survive. Compressed ecc keys always start
// with 0x02 or 0x03, which keeps this safe until the key scheme changes.
func PublicKeyFromWIF(encoded string) (*PublicKeyType, error) {
	if encoded == "" {
		return nil, ErrKeyLength
	}
	if !strings.HasPrefix(encoded, constants.CoinSymbol) {
		return nil, ErrPubKeyFormatErr
	}

	buffer := []byte(encoded)[len(constants.CoinSymbol):]
	decoded, err := base58.BitcoinEncoding.Decode(buffer)
	if err != nil {
		return nil, err
	}

	x, ok := new(big.Int).SetString(string(decoded), 10)
	if !ok {
		return nil, ErrPubKeyFormatErr
	}

	buf := x.Bytes()
	if len(buf) <= 4 {
		return nil, ErrPubKeyFormatErr
	}

	temp := sha256.Sum256(buf[:len(buf)-4])
	temps := sha256.Sum256(temp[:])
	if !bytes.Equal(temps[0:4], buf[len(buf)-4:]) {
		return nil, ErrPubKeyFormatErr
	}

	return PublicKeyFromBytes(buf[:len(buf)-4]), nil
}

func (m *PublicKeyType) Equal(other *PublicKeyType) bool {
	return bytes.Equal(m.Data, other.Data)
}

func (m *PublicKeyType) ToWIF() string {
	return fmt.Sprintf("%s%s", constants.CoinSymbol, m.toBase58())
}

func (m *PublicKeyType) toBase58() string {
	data := make([]byte, len(m.Data))
	copy(data, m.Data)
	temp := sha256.Sum256(data)
	temps := sha256.Sum256(temp[:])
	data = append(data, temps[0:4]...)

	bi := new(big.Int).SetBytes(data).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return string(encoded)
}

func (m *PublicKeyType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.ToWIF())), nil
}

func (m *PublicKeyType) UnmarshalJSON(input []byte) error {
	if len(input) < 2 || input[0] != '"' || input[len(input)-1] != '"' {
		return ErrPubKeyFormatErr
	}
	res, err := PublicKeyFromWIF(string(input[1 : len(input)-1]))
	if err != nil {
		return err
	}
	m.Data = res.Data
	return nil
}

func (m *PublicKeyType) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if len(m.Data) != 33 {
		return ErrKeyLength
	}
	return nil
}
