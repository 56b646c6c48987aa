package prototype

// Receipt status codes.
const (
	StatusSuccess uint32 = 200
	StatusFailed  uint32 = 500
)

// OperationReceipt records the outcome of one operation inside a
// transaction.
type OperationReceipt struct {
	Status    uint32 `json:"status"`
	OpType    string `json:"op_type"`
	ErrorInfo string `json:"error_info,omitempty"`
}

// TransactionReceipt records the outcome of a whole transaction. A failed
// transaction leaves no state behind, so op results stop at the failing
// operation.
type TransactionReceipt struct {
	Status    uint32             `json:"status"`
	ErrorInfo string             `json:"error_info,omitempty"`
	FeePaid   int64              `json:"fee_paid"`
	OpResults []OperationReceipt `json:"op_results,omitempty"`
}

func (m *TransactionReceipt) IsSuccess() bool {
	return m != nil && m.Status == StatusSuccess
}

// TransactionWrapper pairs a transaction with its receipt while it moves
// through the pipeline.
type TransactionWrapper struct {
	SigTrx  *SignedTransaction
	Receipt *TransactionReceipt
}

// OperationNotification is published on the notice bus before and after an
// operation is applied. TrxStatus is StatusSuccess only on post notices of
// transactions that went on to commit.
type OperationNotification struct {
	TrxStatus uint32     `json:"trx_status"`
	TrxDigest []byte     `json:"trx_digest"`
	OpInTrx   uint64     `json:"op_in_trx"`
	Op        *Operation `json:"op"`
}
