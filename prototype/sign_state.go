package prototype

import (
	"bytes"
)

// AuthorityGetter loads the current authority of an account from state.
// A nil return means the account does not exist.
type AuthorityGetter func(AccountIdType) *Authority

type AuthorityType uint16

const (
	Active AuthorityType = iota
	Owner
)

// SignState checks weighted-threshold authorities against the public keys
// a transaction carries. Nested account authorities are followed through
// their active branch, at most maxRecursion levels deep.
type SignState struct {
	// PublicKeyType is not comparable, carried keys live in a slice
	trxCarriedPubs []*PublicKeyType
	approved       map[AccountIdType]bool
	maxRecursion   uint32

	ActiveGetter AuthorityGetter
	OwnerGetter  AuthorityGetter
}

func (s *SignState) Init(pubs []*PublicKeyType, maxDepth uint32, active, owner AuthorityGetter) {
	s.trxCarriedPubs = append(s.trxCarriedPubs[:0], pubs...)
	s.approved = make(map[AccountIdType]bool)
	s.maxRecursion = maxDepth
	s.ActiveGetter = active
	s.OwnerGetter = owner
}

func (s *SignState) checkPub(key *PublicKeyType) bool {
	if key == nil {
		return false
	}
	for _, k := range s.trxCarriedPubs {
		if k != nil && bytes.Equal(key.Data, k.Data) {
			return true
		}
	}
	return false
}

func (s *SignState) CheckAuthorityByAccount(id AccountIdType, at AuthorityType) bool {
	// a speed up cache
	if s.approved[id] {
		return true
	}
	auth := s.getAuthority(id, at)
	if auth == nil {
		return false
	}
	if s.CheckAuthority(auth, 0, at) {
		s.approved[id] = true
		return true
	}
	return false
}

func (s *SignState) CheckAuthority(auth *Authority, depth uint32, at AuthorityType) bool {
	var totalWeight uint32

	for _, k := range auth.KeyAuths {
		if s.checkPub(k.Key) {
			totalWeight += uint32(k.Weight)
			if totalWeight >= auth.WeightThreshold {
				return true
			}
		}
	}

	for _, a := range auth.AccountAuths {
		if !s.approved[a.Account] {
			if depth == s.maxRecursion {
				continue
			}
			// member accounts vouch through their active branch
			inner := s.getAuthority(a.Account, Active)
			if inner == nil || !s.CheckAuthority(inner, depth+1, at) {
				continue
			}
			s.approved[a.Account] = true
		}
		totalWeight += uint32(a.Weight)
		if totalWeight >= auth.WeightThreshold {
			return true
		}
	}

	return totalWeight >= auth.WeightThreshold
}

func (s *SignState) getAuthority(id AccountIdType, at AuthorityType) *Authority {
	switch at {
	case Active:
		return s.ActiveGetter(id)
	case Owner:
		return s.OwnerGetter(id)
	}
	return nil
}
