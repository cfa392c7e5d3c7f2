package domain

// OperationKind indicates the kind of kiosk operation recorded in the ledger.
type OperationKind string

const (
	Deposit    OperationKind = "DEPOSIT"
	Withdrawal OperationKind = "WITHDRAWAL"
	Transfer   OperationKind = "TRANSFER"
)

// IsValid reports whether k is one of the known operation kinds.
func (k OperationKind) IsValid() bool {
	switch k {
	case Deposit, Withdrawal, Transfer:
		return true
	}
	return false
}

// TransactionStatus is the terminal state of a recorded operation.
// Rejected attempts are never persisted; FAILED exists for wire compatibility
// with the original data model.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// TransactionRecord is one immutable entry in the append-only ledger.
// Amount and Fee are integer Ariary (no fractional subunit in this domain).
type TransactionRecord struct {
	TransactionID  string            `json:"transactionID"` // Primary key (UUID)
	SessionID      string            `json:"sessionID"`     // FK -> Session.SessionID
	Type           OperationKind     `json:"type"`
	Service        ServiceKind       `json:"service"`
	Amount         int64             `json:"amount"`
	Fee            int64             `json:"fee"`
	PhoneNumber    string            `json:"phoneNumber,omitempty"`    // Deposit/withdrawal counterparty
	RecipientName  string            `json:"recipientName,omitempty"`  // Transfer only
	RecipientPhone string            `json:"recipientPhone,omitempty"` // Transfer only
	Description    string            `json:"description,omitempty"`
	Status         TransactionStatus `json:"status"`
	Sequence       int64             `json:"sequence"` // Insertion order, tie-break for equal timestamps
	AuditFields
}
