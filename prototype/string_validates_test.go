package prototype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	a := assert.New(t)

	a.NoError(ValidateAccountName("alice"))
	a.NoError(ValidateAccountName("alice-vault"))
	a.NoError(ValidateAccountName("a-1-b-2"))
	a.NoError(ValidateAccountName("123"))
	a.NoError(ValidateAccountName(strings.Repeat("a", 63)))

	a.Equal(ErrAccountNameLength, ValidateAccountName(""))
	a.Equal(ErrAccountNameLength, ValidateAccountName("ab"))
	a.Equal(ErrAccountNameLength, ValidateAccountName(strings.Repeat("a", 64)))

	a.Equal(ErrAccountNameFormat, ValidateAccountName("-alice"))
	a.Equal(ErrAccountNameFormat, ValidateAccountName("alice-"))
	a.Equal(ErrAccountNameFormat, ValidateAccountName("alice--vault"))
	a.Equal(ErrAccountNameFormat, ValidateAccountName("Alice"))
	a.Equal(ErrAccountNameFormat, ValidateAccountName("ali ce"))
	a.Equal(ErrAccountNameFormat, ValidateAccountName("ali.ce"))

	a.True(IsStructural(ValidateAccountName("-alice")))
}

func TestChainAuthorityKinds(t *testing.T) {
	a := assert.New(t)

	a.NoError(ValidateChainAuthorityKind("root"))
	a.NoError(ValidateChainAuthorityKind("registrar"))
	a.NoError(ValidateChainAuthorityKind("license-administrator"))
	a.Equal(ErrUnknownAuthorityKind, ValidateChainAuthorityKind("janitor"))
	a.Equal(ErrUnknownAuthorityKind, ValidateChainAuthorityKind(""))

	kinds := ChainAuthorityKinds()
	a.Contains(kinds, "root")
	a.Contains(kinds, "wire-out-handler")
	for _, k := range kinds {
		a.NoError(ValidateChainAuthorityKind(k))
	}
}
