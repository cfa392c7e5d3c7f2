package domain

import "time"

// Session is one operator's accounting period, opened by declaring the float on
// hand and closed explicitly at the end of the day. At most one session per
// operator may be active at a time; closing never erases the transaction history.
type Session struct {
	SessionID       string     `json:"sessionID"`  // Primary key (UUID)
	OperatorID      string     `json:"operatorID"` // Authenticated operator owning the session
	OpenedAt        time.Time  `json:"openedAt"`
	ClosedAt        *time.Time `json:"closedAt,omitempty"`
	IsActive        bool       `json:"isActive"`
	OpeningBalances Balances   `json:"openingBalances"` // Snapshot taken at start, never updated
	CurrentBalances Balances   `json:"currentBalances"` // Live float, moved by each accepted operation
	AuditFields
}
