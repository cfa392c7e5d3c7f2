package dto

import "github.com/hasinarv/cashpoint_backend/internal/core/domain"

// ServiceActivityResponse is one row of the per-service breakdown.
type ServiceActivityResponse struct {
	Service          string `json:"service"`
	Balance          int64  `json:"balance"`
	TransactionCount int64  `json:"transactionCount"`
	FeeRevenue       int64  `json:"feeRevenue"`
}

// SummaryResponse is the dashboard projection.
type SummaryResponse struct {
	SessionActive    bool                      `json:"sessionActive"`
	SessionID        string                    `json:"sessionID,omitempty"`
	Balances         BalancesResponse          `json:"balances"`
	MobileMoneyTotal int64                     `json:"mobileMoneyTotal"`
	TotalFloat       int64                     `json:"totalFloat"`
	FeeRevenue       int64                     `json:"feeRevenue"`
	TransactionCount int64                     `json:"transactionCount"`
	PerService       []ServiceActivityResponse `json:"perService"`
	RecentActivity   []TransactionResponse     `json:"recentActivity"`
}

// SummaryParams defines the query parameters of the summary endpoint.
type SummaryParams struct {
	RecentLimit int `form:"recentLimit,default=5" binding:"omitempty,gte=1,lte=50"`
}

// ToSummaryResponse converts a domain summary to its wire shape.
func ToSummaryResponse(s *domain.SessionSummary) SummaryResponse {
	perService := make([]ServiceActivityResponse, len(s.PerService))
	for i, row := range s.PerService {
		perService[i] = ServiceActivityResponse{
			Service:          ServiceWire(row.Service),
			Balance:          row.Balance,
			TransactionCount: row.TransactionCount,
			FeeRevenue:       row.FeeRevenue,
		}
	}
	return SummaryResponse{
		SessionActive:    s.SessionActive,
		SessionID:        s.SessionID,
		Balances:         ToBalancesResponse(s.Balances),
		MobileMoneyTotal: s.MobileMoneyTotal,
		TotalFloat:       s.TotalFloat,
		FeeRevenue:       s.FeeRevenue,
		TransactionCount: s.TransactionCount,
		PerService:       perService,
		RecentActivity:   ToTransactionResponses(s.RecentActivity),
	}
}

// BalanceResponse is the wire shape of a single balance query.
type BalanceResponse struct {
	Target        string `json:"target"` // cash | mvola | orangeMoney | airtelMoney
	Balance       int64  `json:"balance"`
	SessionActive bool   `json:"sessionActive"`
}
