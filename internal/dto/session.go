package dto

import (
	"time"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// StartSessionRequest carries the declared opening balances for a fresh session.
// Pointers distinguish "zero balance" from "field missing"; zero is a legal
// opening balance for any pool.
type StartSessionRequest struct {
	Cash        *int64 `json:"cash" binding:"required,gte=0"`
	MVola       *int64 `json:"mvola" binding:"required,gte=0"`
	OrangeMoney *int64 `json:"orangeMoney" binding:"required,gte=0"`
	AirtelMoney *int64 `json:"airtelMoney" binding:"required,gte=0"`
}

// ToBalances converts the request into domain balances.
func (r StartSessionRequest) ToBalances() domain.Balances {
	return domain.Balances{
		Cash:        *r.Cash,
		MVola:       *r.MVola,
		OrangeMoney: *r.OrangeMoney,
		AirtelMoney: *r.AirtelMoney,
	}
}

// BalancesResponse is the wire shape of a balance snapshot.
type BalancesResponse struct {
	Cash        int64 `json:"cash"`
	MVola       int64 `json:"mvola"`
	OrangeMoney int64 `json:"orangeMoney"`
	AirtelMoney int64 `json:"airtelMoney"`
}

// ToBalancesResponse converts domain balances to the wire shape.
func ToBalancesResponse(b domain.Balances) BalancesResponse {
	return BalancesResponse{
		Cash:        b.Cash,
		MVola:       b.MVola,
		OrangeMoney: b.OrangeMoney,
		AirtelMoney: b.AirtelMoney,
	}
}

// SessionResponse is the wire shape of a session.
type SessionResponse struct {
	SessionID       string           `json:"sessionID"`
	OpenedAt        time.Time        `json:"openedAt"`
	ClosedAt        *time.Time       `json:"closedAt,omitempty"`
	IsActive        bool             `json:"isActive"`
	OpeningBalances BalancesResponse `json:"openingBalances"`
	CurrentBalances BalancesResponse `json:"currentBalances"`
}

// ToSessionResponse converts a domain session to its wire shape.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:       s.SessionID,
		OpenedAt:        s.OpenedAt,
		ClosedAt:        s.ClosedAt,
		IsActive:        s.IsActive,
		OpeningBalances: ToBalancesResponse(s.OpeningBalances),
		CurrentBalances: ToBalancesResponse(s.CurrentBalances),
	}
}
