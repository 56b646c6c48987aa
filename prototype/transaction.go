package prototype

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Transaction bundles operations for atomic application. The reference
// block fields pin the transaction to a fork; Expiration bounds how long
// it may wait for inclusion.
type Transaction struct {
	RefBlockNum    uint32            `json:"ref_block_num"`
	RefBlockPrefix uint32            `json:"ref_block_prefix"`
	Expiration     TimePointSec      `json:"expiration"`
	Operations     []*Operation      `json:"operations"`
	Extensions     []FutureExtension `json:"extensions"`
}

func (m *Transaction) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if m.Expiration == 0 {
		return errors.New("trx must have an expiration")
	}
	if len(m.Operations) == 0 {
		return errors.New("trx must have operations")
	}
	for index, op := range m.Operations {
		if err := validateOp(op); err != nil {
			return errors.WithMessage(err, fmt.Sprintf("operation %d", index))
		}
	}
	return nil
}

func validateOp(op *Operation) error {
	if op == nil || op.Op == nil {
		return ErrNpe
	}
	return op.Op.Validate()
}

func (m *Transaction) AddOperation(op BaseOperation) {
	m.Operations = append(m.Operations, WrapOperation(op))
}

// GetRequiredAuthorities merges the requirement sets of every operation.
func (m *Transaction) GetRequiredAuthorities(active *map[AccountIdType]bool, owner *map[AccountIdType]bool) {
	for _, op := range m.Operations {
		base := GetBaseOperation(op)
		base.GetRequiredActive(active)
		base.GetRequiredOwner(owner)
	}
}

func (m *Transaction) Pack() []byte {
	w := &bytes.Buffer{}
	packUvarint(w, uint64(m.RefBlockNum))
	packUvarint(w, uint64(m.RefBlockPrefix))
	packUvarint(w, uint64(m.Expiration))
	packUvarint(w, uint64(len(m.Operations)))
	for _, op := range m.Operations {
		packBytes(w, PackOperation(GetBaseOperation(op)))
	}
	packFutureExtensions(w, m.Extensions)
	return w.Bytes()
}

func UnpackTransaction(data []byte) (*Transaction, error) {
	u := &unpacker{data: data}
	m := &Transaction{}
	var err error
	if m.RefBlockNum, err = u.u32(); err != nil {
		return nil, err
	}
	if m.RefBlockPrefix, err = u.u32(); err != nil {
		return nil, err
	}
	expiration, err := u.u32()
	if err != nil {
		return nil, err
	}
	m.Expiration = TimePointSec(expiration)
	count, err := u.uvarint()
	if err != nil {
		return nil, err
	}
	if count > uint64(u.remaining()) {
		return nil, ErrTruncatedData
	}
	for i := uint64(0); i < count; i++ {
		packed, err := u.bytes()
		if err != nil {
			return nil, err
		}
		op, err := UnpackOperation(packed)
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("operation %d", i))
		}
		m.Operations = append(m.Operations, WrapOperation(op))
	}
	if m.Extensions, err = unpackFutureExtensions(u); err != nil {
		return nil, err
	}
	if !u.empty() {
		return nil, StructuralError("trailing bytes after transaction")
	}
	return m, nil
}
