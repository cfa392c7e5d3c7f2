package mapping

import (
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/models"
)

// ToModelSession converts a domain Session to a model Session
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID:          d.SessionID,
		OperatorID:         d.OperatorID,
		OpenedAt:           d.OpenedAt,
		ClosedAt:           d.ClosedAt,
		IsActive:           d.IsActive,
		OpeningCash:        d.OpeningBalances.Cash,
		OpeningMVola:       d.OpeningBalances.MVola,
		OpeningOrangeMoney: d.OpeningBalances.OrangeMoney,
		OpeningAirtelMoney: d.OpeningBalances.AirtelMoney,
		Cash:               d.CurrentBalances.Cash,
		MVola:              d.CurrentBalances.MVola,
		OrangeMoney:        d.CurrentBalances.OrangeMoney,
		AirtelMoney:        d.CurrentBalances.AirtelMoney,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSession converts a model Session to a domain Session
func ToDomainSession(m models.Session) domain.Session {
	return domain.Session{
		SessionID:  m.SessionID,
		OperatorID: m.OperatorID,
		OpenedAt:   m.OpenedAt,
		ClosedAt:   m.ClosedAt,
		IsActive:   m.IsActive,
		OpeningBalances: domain.Balances{
			Cash:        m.OpeningCash,
			MVola:       m.OpeningMVola,
			OrangeMoney: m.OpeningOrangeMoney,
			AirtelMoney: m.OpeningAirtelMoney,
		},
		CurrentBalances: domain.Balances{
			Cash:        m.Cash,
			MVola:       m.MVola,
			OrangeMoney: m.OrangeMoney,
			AirtelMoney: m.AirtelMoney,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
