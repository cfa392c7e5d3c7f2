package dto

import (
	"time"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// DepositRequest asks the kiosk to take mobile-money credit and hand out cash.
type DepositRequest struct {
	Service     string `json:"service" binding:"required,oneof=mvola orangeMoney airtelMoney"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	PhoneNumber string `json:"phoneNumber" binding:"required,msisdn"`
}

// WithdrawRequest asks the kiosk to take cash and credit mobile money.
type WithdrawRequest struct {
	Service     string `json:"service" binding:"required,oneof=mvola orangeMoney airtelMoney"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	PhoneNumber string `json:"phoneNumber" binding:"required,msisdn"`
}

// RecipientRequest identifies the third party receiving a transfer.
type RecipientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,msisdn"`
}

// TransferRequest asks the kiosk to send mobile-money value to a third party.
type TransferRequest struct {
	Service     string           `json:"service" binding:"required,oneof=mvola orangeMoney airtelMoney"`
	Amount      int64            `json:"amount" binding:"required,gt=0"`
	Recipient   RecipientRequest `json:"recipient" binding:"required"`
	Description string           `json:"description"`
}

// ListTransactionsParams defines the query parameters of the transaction list.
type ListTransactionsParams struct {
	Service *string `form:"service" binding:"omitempty,oneof=mvola orangeMoney airtelMoney"`
	Type    *string `form:"type" binding:"omitempty,oneof=deposit withdrawal transfer"`
	Limit   int     `form:"limit,default=50" binding:"omitempty,gte=1,lte=500"`
}

// RecipientResponse mirrors RecipientRequest on the way out.
type RecipientResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TransactionResponse is the wire shape of one ledger entry.
type TransactionResponse struct {
	TransactionID string             `json:"transactionID"`
	SessionID     string             `json:"sessionID"`
	Type          string             `json:"type"`
	Service       string             `json:"service"`
	Amount        int64              `json:"amount"`
	Fees          int64              `json:"fees"`
	PhoneNumber   string             `json:"phoneNumber,omitempty"`
	Recipient     *RecipientResponse `json:"recipient,omitempty"`
	Description   string             `json:"description,omitempty"`
	Date          time.Time          `json:"date"`
	Status        string             `json:"status"`
}

// ToTransactionResponse converts a domain record to its wire shape.
func ToTransactionResponse(t *domain.TransactionRecord) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		SessionID:     t.SessionID,
		Type:          OperationWire(t.Type),
		Service:       ServiceWire(t.Service),
		Amount:        t.Amount,
		Fees:          t.Fee,
		PhoneNumber:   t.PhoneNumber,
		Description:   t.Description,
		Date:          t.CreatedAt,
		Status:        StatusWire(t.Status),
	}
	if t.RecipientName != "" || t.RecipientPhone != "" {
		resp.Recipient = &RecipientResponse{Name: t.RecipientName, Phone: t.RecipientPhone}
	}
	return resp
}

// ToTransactionResponses converts a slice of domain records to wire shapes.
func ToTransactionResponses(ts []domain.TransactionRecord) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i := range ts {
		res[i] = ToTransactionResponse(&ts[i])
	}
	return res
}

// ListTransactionsResponse wraps the transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
