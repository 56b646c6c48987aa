package prototype

import (
	"bytes"
	"encoding/binary"
)

//
// The wire form of an operation is its catalog tag as a uvarint followed by
// its fields in declaration order. Integers are varints, byte and string
// fields length-prefixed, optional fields carry a presence byte. The layout
// is append-only: tags are never reassigned and extension records tolerate
// unknown trailing slots.
//

// PackOperation encodes any catalog variant. The switch is total over the
// catalog; an operation from outside it is a programming error.
func PackOperation(op BaseOperation) []byte {
	w := &bytes.Buffer{}
	packUvarint(w, uint64(op.OpType()))
	switch t := op.(type) {
	case *AccountCreateOperation:
		packAccountCreate(w, t)
	case *AccountUpdateOperation:
		packAccountUpdate(w, t)
	case *AccountWhitelistOperation:
		packAccountWhitelist(w, t)
	case *AccountUpgradeOperation:
		packAccountUpgrade(w, t)
	case *AccountTransferOperation:
		packAccountTransfer(w, t)
	case *TetherAccountsOperation:
		packTetherAccounts(w, t)
	case *ChangePublicKeysOperation:
		packChangePublicKeys(w, t)
	case *SetRollBackEnabledOperation:
		packSetRollBackEnabled(w, t)
	case *RollBackPublicKeysOperation:
		packRollBackPublicKeys(w, t)
	case *UpgradeAccountCyclesOperation:
		packUpgradeAccountCycles(w, t)
	case *SetStartingCycleAssetAmountOperation:
		packSetStartingCycleAssetAmount(w, t)
	case *SetChainAuthorityOperation:
		packSetChainAuthority(w, t)
	default:
		panic("packing an operation outside the catalog")
	}
	return w.Bytes()
}

func packUvarint(w *bytes.Buffer, v uint64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], v)
	w.Write(b[:n])
}

func packVarint(w *bytes.Buffer, v int64) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutVarint(b[:], v)
	w.Write(b[:n])
}

func packBytes(w *bytes.Buffer, data []byte) {
	packUvarint(w, uint64(len(data)))
	w.Write(data)
}

func packString(w *bytes.Buffer, s string) {
	packUvarint(w, uint64(len(s)))
	w.WriteString(s)
}

func packBool(w *bytes.Buffer, b bool) {
	if b {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

func packAsset(w *bytes.Buffer, a *Asset) {
	packVarint(w, a.Amount)
	packUvarint(w, uint64(a.AssetId))
}

func packAuthority(w *bytes.Buffer, a *Authority) {
	packUvarint(w, uint64(a.WeightThreshold))
	packUvarint(w, uint64(len(a.AccountAuths)))
	for i := range a.AccountAuths {
		packUvarint(w, uint64(a.AccountAuths[i].Account))
		packUvarint(w, uint64(a.AccountAuths[i].Weight))
	}
	packUvarint(w, uint64(len(a.KeyAuths)))
	for i := range a.KeyAuths {
		if k := a.KeyAuths[i].Key; k != nil {
			packBytes(w, k.Data)
		} else {
			packBytes(w, nil)
		}
		packUvarint(w, uint64(a.KeyAuths[i].Weight))
	}
}

func packOptionalAuthority(w *bytes.Buffer, a *Authority) {
	packBool(w, a != nil)
	if a != nil {
		packAuthority(w, a)
	}
}

func packAccountOptions(w *bytes.Buffer, o *AccountOptions) {
	if o.MemoKey != nil {
		packBytes(w, o.MemoKey.Data)
	} else {
		packBytes(w, nil)
	}
	packUvarint(w, uint64(o.VotingAccount))
	packUvarint(w, uint64(o.NumWitnessVotes))
	packUvarint(w, uint64(o.NumCommitteeVotes))
	packUvarint(w, uint64(len(o.Votes)))
	for _, v := range o.Votes {
		packUvarint(w, uint64(v))
	}
	packFutureExtensions(w, o.Extensions)
}

func packAccountCreate(w *bytes.Buffer, m *AccountCreateOperation) {
	packAsset(w, &m.Fee)
	w.WriteByte(byte(m.Kind))
	packUvarint(w, uint64(m.Registrar))
	packUvarint(w, uint64(m.Referrer))
	packUvarint(w, uint64(m.ReferrerPercent))
	packString(w, m.Name)
	packAuthority(w, &m.Owner)
	packAuthority(w, &m.Active)
	packAccountOptions(w, &m.Options)
	m.Extensions.packTo(w)
}

func packAccountUpdate(w *bytes.Buffer, m *AccountUpdateOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Account))
	packOptionalAuthority(w, m.Owner)
	packOptionalAuthority(w, m.Active)
	packBool(w, m.NewOptions != nil)
	if m.NewOptions != nil {
		packAccountOptions(w, m.NewOptions)
	}
	m.Extensions.packTo(w)
}

func packAccountWhitelist(w *bytes.Buffer, m *AccountWhitelistOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.AuthorizingAccount))
	packUvarint(w, uint64(m.AccountToList))
	w.WriteByte(m.NewListing)
	packFutureExtensions(w, m.Extensions)
}

func packAccountUpgrade(w *bytes.Buffer, m *AccountUpgradeOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.AccountToUpgrade))
	packBool(w, m.UpgradeToLifetimeMember)
	packFutureExtensions(w, m.Extensions)
}

func packAccountTransfer(w *bytes.Buffer, m *AccountTransferOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.AccountId))
	packUvarint(w, uint64(m.NewOwner))
	packFutureExtensions(w, m.Extensions)
}

func packTetherAccounts(w *bytes.Buffer, m *TetherAccountsOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.WalletAccount))
	packUvarint(w, uint64(m.VaultAccount))
	packFutureExtensions(w, m.Extensions)
}

func packChangePublicKeys(w *bytes.Buffer, m *ChangePublicKeysOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Account))
	packOptionalAuthority(w, m.Active)
	packOptionalAuthority(w, m.Owner)
	packFutureExtensions(w, m.Extensions)
}

func packSetRollBackEnabled(w *bytes.Buffer, m *SetRollBackEnabledOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Account))
	packBool(w, m.RollBackEnabled)
	packFutureExtensions(w, m.Extensions)
}

func packRollBackPublicKeys(w *bytes.Buffer, m *RollBackPublicKeysOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.AuthorityAccount))
	packUvarint(w, uint64(m.Account))
	packFutureExtensions(w, m.Extensions)
}

func packUpgradeAccountCycles(w *bytes.Buffer, m *UpgradeAccountCyclesOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Account))
	packString(w, m.Description)
	packFutureExtensions(w, m.Extensions)
}

func packSetStartingCycleAssetAmount(w *bytes.Buffer, m *SetStartingCycleAssetAmountOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Issuer))
	packUvarint(w, uint64(m.NewAmount))
	packFutureExtensions(w, m.Extensions)
}

func packSetChainAuthority(w *bytes.Buffer, m *SetChainAuthorityOperation) {
	packAsset(w, &m.Fee)
	packUvarint(w, uint64(m.Issuer))
	packUvarint(w, uint64(m.Account))
	packString(w, m.Kind)
	packFutureExtensions(w, m.Extensions)
}
