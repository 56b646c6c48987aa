package prototype

import (
	"sort"

	"github.com/dascoin/dascoin-go/common/constants"
)

// ValidateAccountName checks the account name grammar: lowercase
// alphanumeric segments joined by single hyphens, 3 to 63 characters
// overall, no leading or trailing hyphen.
func ValidateAccountName(name string) error {
	if len(name) < constants.MinAccountNameLength ||
		len(name) > constants.MaxAccountNameLength {
		return ErrAccountNameLength
	}

	segLen := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			segLen++
		case c == '-':
			if segLen == 0 {
				return ErrAccountNameFormat
			}
			segLen = 0
		default:
			return ErrAccountNameFormat
		}
	}
	if segLen == 0 {
		return ErrAccountNameFormat
	}
	return nil
}

// administrative roles assignable through set_chain_authority
const (
	AuthorityRoot                 = "root"
	AuthorityRegistrar            = "registrar"
	AuthorityLicenseAdministrator = "license-administrator"
	AuthorityWebassetIssuer       = "webasset-issuer"
	AuthorityCycleIssuer          = "cycle-issuer"
	AuthorityDaspayAdministrator  = "daspay-administrator"
	AuthorityWireOutHandler       = "wire-out-handler"
)

var chainAuthorityKinds = map[string]bool{
	AuthorityRoot:                 true,
	AuthorityRegistrar:            true,
	AuthorityLicenseAdministrator: true,
	AuthorityWebassetIssuer:       true,
	AuthorityCycleIssuer:          true,
	AuthorityDaspayAdministrator:  true,
	AuthorityWireOutHandler:       true,
}

func ValidateChainAuthorityKind(kind string) error {
	if !chainAuthorityKinds[kind] {
		return ErrUnknownAuthorityKind
	}
	return nil
}

// ChainAuthorityKinds lists the assignable roles in a stable order.
func ChainAuthorityKinds() []string {
	kinds := make([]string, 0, len(chainAuthorityKinds))
	for k := range chainAuthorityKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
