package prototype

import (
	"encoding/binary"
	"math"
)

type unpacker struct {
	data []byte
	pos  int
}

func (u *unpacker) remaining() int {
	return len(u.data) - u.pos
}

func (u *unpacker) empty() bool {
	return u.remaining() == 0
}

func (u *unpacker) uvarint() (uint64, error) {
	v, n := binary.Uvarint(u.data[u.pos:])
	if n <= 0 {
		return 0, ErrTruncatedData
	}
	u.pos += n
	return v, nil
}

func (u *unpacker) varint() (int64, error) {
	v, n := binary.Varint(u.data[u.pos:])
	if n <= 0 {
		return 0, ErrTruncatedData
	}
	u.pos += n
	return v, nil
}

func (u *unpacker) u8() (byte, error) {
	if u.remaining() < 1 {
		return 0, ErrTruncatedData
	}
	b := u.data[u.pos]
	u.pos++
	return b, nil
}

func (u *unpacker) u16() (uint16, error) {
	v, err := u.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint16 {
		return 0, StructuralError("value exceeds 16 bits")
	}
	return uint16(v), nil
}

func (u *unpacker) u32() (uint32, error) {
	v, err := u.uvarint()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, StructuralError("value exceeds 32 bits")
	}
	return uint32(v), nil
}

func (u *unpacker) boolean() (bool, error) {
	b, err := u.u8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, StructuralError("invalid boolean flag")
}

// bytes reads a length-prefixed field and detaches it from the buffer.
func (u *unpacker) bytes() ([]byte, error) {
	n, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if uint64(u.remaining()) < n {
		return nil, ErrTruncatedData
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	copy(b, u.data[u.pos:u.pos+int(n)])
	u.pos += int(n)
	return b, nil
}

func (u *unpacker) str() (string, error) {
	b, err := u.bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnpackOperation decodes a wire-form operation. Trailing garbage after the
// final field is rejected; unknown extension slots inside the operation are
// not.
func UnpackOperation(data []byte) (BaseOperation, error) {
	u := &unpacker{data: data}
	tag, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if tag >= uint64(opTypeCount) {
		return nil, ErrUnknownOpType
	}
	op, err := NewBaseOperation(OpType(tag))
	if err != nil {
		return nil, err
	}
	if err := unpackInto(u, op); err != nil {
		return nil, err
	}
	if !u.empty() {
		return nil, StructuralError("trailing bytes after operation")
	}
	return op, nil
}

func unpackInto(u *unpacker, op BaseOperation) error {
	switch t := op.(type) {
	case *AccountCreateOperation:
		return unpackAccountCreate(u, t)
	case *AccountUpdateOperation:
		return unpackAccountUpdate(u, t)
	case *AccountWhitelistOperation:
		return unpackAccountWhitelist(u, t)
	case *AccountUpgradeOperation:
		return unpackAccountUpgrade(u, t)
	case *AccountTransferOperation:
		return unpackAccountTransfer(u, t)
	case *TetherAccountsOperation:
		return unpackTetherAccounts(u, t)
	case *ChangePublicKeysOperation:
		return unpackChangePublicKeys(u, t)
	case *SetRollBackEnabledOperation:
		return unpackSetRollBackEnabled(u, t)
	case *RollBackPublicKeysOperation:
		return unpackRollBackPublicKeys(u, t)
	case *UpgradeAccountCyclesOperation:
		return unpackUpgradeAccountCycles(u, t)
	case *SetStartingCycleAssetAmountOperation:
		return unpackSetStartingCycleAssetAmount(u, t)
	case *SetChainAuthorityOperation:
		return unpackSetChainAuthority(u, t)
	}
	panic("unpacking an operation outside the catalog")
}

func unpackAsset(u *unpacker) (Asset, error) {
	amount, err := u.varint()
	if err != nil {
		return Asset{}, err
	}
	assetId, err := u.uvarint()
	if err != nil {
		return Asset{}, err
	}
	return Asset{Amount: amount, AssetId: AssetIdType(assetId)}, nil
}

func unpackAccountId(u *unpacker) (AccountIdType, error) {
	v, err := u.uvarint()
	return AccountIdType(v), err
}

func unpackAuthority(u *unpacker) (*Authority, error) {
	threshold, err := u.u32()
	if err != nil {
		return nil, err
	}
	a := &Authority{WeightThreshold: threshold}

	accounts, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if accounts > uint64(u.remaining()) {
		return nil, ErrTruncatedData
	}
	for i := uint64(0); i < accounts; i++ {
		id, err := unpackAccountId(u)
		if err != nil {
			return nil, err
		}
		weight, err := u.u16()
		if err != nil {
			return nil, err
		}
		a.AccountAuths = append(a.AccountAuths, AccountAuth{Account: id, Weight: weight})
	}

	keys, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if keys > uint64(u.remaining()) {
		return nil, ErrTruncatedData
	}
	for i := uint64(0); i < keys; i++ {
		data, err := u.bytes()
		if err != nil {
			return nil, err
		}
		weight, err := u.u16()
		if err != nil {
			return nil, err
		}
		a.KeyAuths = append(a.KeyAuths, KeyAuth{Key: PublicKeyFromBytes(data), Weight: weight})
	}
	return a, nil
}

func unpackOptionalAuthority(u *unpacker) (*Authority, error) {
	present, err := u.boolean()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return unpackAuthority(u)
}

func unpackAccountOptions(u *unpacker) (*AccountOptions, error) {
	memo, err := u.bytes()
	if err != nil {
		return nil, err
	}
	o := &AccountOptions{}
	if len(memo) > 0 {
		o.MemoKey = PublicKeyFromBytes(memo)
	}
	if o.VotingAccount, err = unpackAccountId(u); err != nil {
		return nil, err
	}
	if o.NumWitnessVotes, err = u.u16(); err != nil {
		return nil, err
	}
	if o.NumCommitteeVotes, err = u.u16(); err != nil {
		return nil, err
	}
	votes, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if votes > uint64(u.remaining()) {
		return nil, ErrTruncatedData
	}
	for i := uint64(0); i < votes; i++ {
		v, err := u.u32()
		if err != nil {
			return nil, err
		}
		o.Votes = append(o.Votes, VoteIdType(v))
	}
	if o.Extensions, err = unpackFutureExtensions(u); err != nil {
		return nil, err
	}
	return o, nil
}

func unpackAccountCreate(u *unpacker, m *AccountCreateOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	kind, err := u.u8()
	if err != nil {
		return err
	}
	m.Kind = AccountKind(kind)
	if m.Registrar, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Referrer, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.ReferrerPercent, err = u.u16(); err != nil {
		return err
	}
	if m.Name, err = u.str(); err != nil {
		return err
	}
	owner, err := unpackAuthority(u)
	if err != nil {
		return err
	}
	m.Owner = *owner
	active, err := unpackAuthority(u)
	if err != nil {
		return err
	}
	m.Active = *active
	options, err := unpackAccountOptions(u)
	if err != nil {
		return err
	}
	m.Options = *options
	return m.Extensions.unpackFrom(u)
}

func unpackAccountUpdate(u *unpacker, m *AccountUpdateOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Owner, err = unpackOptionalAuthority(u); err != nil {
		return err
	}
	if m.Active, err = unpackOptionalAuthority(u); err != nil {
		return err
	}
	present, err := u.boolean()
	if err != nil {
		return err
	}
	if present {
		if m.NewOptions, err = unpackAccountOptions(u); err != nil {
			return err
		}
	}
	return m.Extensions.unpackFrom(u)
}

func unpackAccountWhitelist(u *unpacker, m *AccountWhitelistOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.AuthorizingAccount, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.AccountToList, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.NewListing, err = u.u8(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackAccountUpgrade(u *unpacker, m *AccountUpgradeOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.AccountToUpgrade, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.UpgradeToLifetimeMember, err = u.boolean(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackAccountTransfer(u *unpacker, m *AccountTransferOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.AccountId, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.NewOwner, err = unpackAccountId(u); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackTetherAccounts(u *unpacker, m *TetherAccountsOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.WalletAccount, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.VaultAccount, err = unpackAccountId(u); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackChangePublicKeys(u *unpacker, m *ChangePublicKeysOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Active, err = unpackOptionalAuthority(u); err != nil {
		return err
	}
	if m.Owner, err = unpackOptionalAuthority(u); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackSetRollBackEnabled(u *unpacker, m *SetRollBackEnabledOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.RollBackEnabled, err = u.boolean(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackRollBackPublicKeys(u *unpacker, m *RollBackPublicKeysOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.AuthorityAccount, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackUpgradeAccountCycles(u *unpacker, m *UpgradeAccountCyclesOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Description, err = u.str(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackSetStartingCycleAssetAmount(u *unpacker, m *SetStartingCycleAssetAmountOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Issuer, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.NewAmount, err = u.u32(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}

func unpackSetChainAuthority(u *unpacker, m *SetChainAuthorityOperation) error {
	var err error
	if m.Fee, err = unpackAsset(u); err != nil {
		return err
	}
	if m.Issuer, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Account, err = unpackAccountId(u); err != nil {
		return err
	}
	if m.Kind, err = u.str(); err != nil {
		return err
	}
	m.Extensions, err = unpackFutureExtensions(u)
	return err
}
