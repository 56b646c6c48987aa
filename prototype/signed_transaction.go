package prototype

import (
	"crypto/sha256"
	"fmt"

	"github.com/dascoin/dascoin-go/common/constants"
	"github.com/pkg/errors"
)

// SignedTransaction couples a transaction with the public keys whose
// signatures the cryptographic layer has already verified. Authority
// checking only needs to know which keys were proven, not the signature
// bytes themselves.
type SignedTransaction struct {
	Trx     *Transaction     `json:"trx"`
	Signees []*PublicKeyType `json:"signees"`
}

func (p *SignedTransaction) Validate() error {
	if p == nil || p.Trx == nil {
		return ErrNpe
	}
	if len(p.Signees) == 0 {
		return errors.New("trx carries no signees")
	}
	for _, k := range p.Signees {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	return p.Trx.Validate()
}

// Digest identifies the transaction for the duplicate guard. The chain
// name is mixed in so the same payload replayed on another chain never
// collides.
func (p *SignedTransaction) Digest() []byte {
	h := sha256.New()
	h.Write([]byte(constants.ChainName))
	h.Write(p.Trx.Pack())
	return h.Sum(nil)
}

// VerifyAuthority resolves every operation's requirement sets and checks
// each against the carried signee keys.
func (p *SignedTransaction) VerifyAuthority(maxRecursion uint32, active, owner AuthorityGetter) error {
	requiredActive := make(map[AccountIdType]bool)
	requiredOwner := make(map[AccountIdType]bool)
	p.Trx.GetRequiredAuthorities(&requiredActive, &requiredOwner)

	s := &SignState{}
	s.Init(p.Signees, maxRecursion, active, owner)

	for id := range requiredOwner {
		if !s.CheckAuthorityByAccount(id, Owner) {
			return errors.WithMessage(ErrMissingAuthority, fmt.Sprintf("owner of account %d", id))
		}
	}
	for id := range requiredActive {
		if !s.CheckAuthorityByAccount(id, Active) {
			return errors.WithMessage(ErrMissingAuthority, fmt.Sprintf("active of account %d", id))
		}
	}
	return nil
}
