package mapping

import (
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/models"
)

// ToModelTransaction converts a domain TransactionRecord to a model Transaction
func ToModelTransaction(d domain.TransactionRecord) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		SessionID:      d.SessionID,
		Type:           models.OperationKind(d.Type),
		Service:        models.ServiceKind(d.Service),
		Amount:         d.Amount,
		Fee:            d.Fee,
		PhoneNumber:    nilIfEmpty(d.PhoneNumber),
		RecipientName:  nilIfEmpty(d.RecipientName),
		RecipientPhone: nilIfEmpty(d.RecipientPhone),
		Description:    nilIfEmpty(d.Description),
		Status:         models.TransactionStatus(d.Status),
		Sequence:       d.Sequence,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain TransactionRecord
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID:  m.TransactionID,
		SessionID:      m.SessionID,
		Type:           domain.OperationKind(m.Type),
		Service:        domain.ServiceKind(m.Service),
		Amount:         m.Amount,
		Fee:            m.Fee,
		PhoneNumber:    emptyIfNil(m.PhoneNumber),
		RecipientName:  emptyIfNil(m.RecipientName),
		RecipientPhone: emptyIfNil(m.RecipientPhone),
		Description:    emptyIfNil(m.Description),
		Status:         domain.TransactionStatus(m.Status),
		Sequence:       m.Sequence,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain records
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionRecord {
	ds := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
