package models

// OperationKind mirrors domain.OperationKind at the storage layer.
type OperationKind string

// ServiceKind mirrors domain.ServiceKind at the storage layer.
type ServiceKind string

// TransactionStatus mirrors domain.TransactionStatus at the storage layer.
type TransactionStatus string

// Transaction is the database representation of one ledger entry.
// Sequence is a bigserial assigned on insert; it gives a stable tie-break
// when timestamps collide.
type Transaction struct {
	TransactionID  string            `json:"transactionID"`
	SessionID      string            `json:"sessionID"`
	Type           OperationKind     `json:"type"`
	Service        ServiceKind       `json:"service"`
	Amount         int64             `json:"amount"`
	Fee            int64             `json:"fee"`
	PhoneNumber    *string           `json:"phoneNumber"`
	RecipientName  *string           `json:"recipientName"`
	RecipientPhone *string           `json:"recipientPhone"`
	Description    *string           `json:"description"`
	Status         TransactionStatus `json:"status"`
	Sequence       int64             `json:"sequence"`
	AuditFields
}
