package models

import "time"

// Session is the database representation of an operator session.
// Balance columns are integer Ariary (bigint).
type Session struct {
	SessionID          string     `json:"sessionID"`
	OperatorID         string     `json:"operatorID"`
	OpenedAt           time.Time  `json:"openedAt"`
	ClosedAt           *time.Time `json:"closedAt"`
	IsActive           bool       `json:"isActive"`
	OpeningCash        int64      `json:"openingCash"`
	OpeningMVola       int64      `json:"openingMvola"`
	OpeningOrangeMoney int64      `json:"openingOrangeMoney"`
	OpeningAirtelMoney int64      `json:"openingAirtelMoney"`
	Cash               int64      `json:"cash"`
	MVola              int64      `json:"mvola"`
	OrangeMoney        int64      `json:"orangeMoney"`
	AirtelMoney        int64      `json:"airtelMoney"`
	AuditFields
}
