package prototype

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Operation wraps a catalog variant for transport. The JSON form is
// {"type": "<catalog name>", "value": {...fields...}}.
type Operation struct {
	Op BaseOperation
}

func WrapOperation(op BaseOperation) *Operation {
	if op == nil {
		panic("wrapping a nil operation")
	}
	return &Operation{Op: op}
}

// GetBaseOperation unwraps the envelope. The envelope must carry a variant;
// an empty one is a programming error, not an input error.
func GetBaseOperation(op *Operation) BaseOperation {
	if op == nil || op.Op == nil {
		panic("operation envelope is empty")
	}
	return op.Op
}

type opEnvelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

func (m *Operation) MarshalJSON() ([]byte, error) {
	if m.Op == nil {
		return nil, ErrNpe
	}
	value, err := json.Marshal(m.Op)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&opEnvelope{Type: m.Op.OpType().String(), Value: value})
}

func (m *Operation) UnmarshalJSON(data []byte) error {
	var env opEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	t, ok := OpTypeFromName(env.Type)
	if !ok {
		return errors.WithMessage(ErrUnknownOpType, env.Type)
	}
	op, err := NewBaseOperation(t)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(env.Value, op); err != nil {
		return err
	}
	m.Op = op
	return nil
}
