package domain

// ServiceActivityRow summarises one service's position and activity within a session.
type ServiceActivityRow struct {
	Service          ServiceKind `json:"service"`
	Balance          int64       `json:"balance"`
	TransactionCount int64       `json:"transactionCount"`
	FeeRevenue       int64       `json:"feeRevenue"`
}

// SessionSummary is the read-only projection consumed by presentation layers.
// Zero-valued (with SessionActive=false) when no session has been started.
type SessionSummary struct {
	SessionActive    bool                 `json:"sessionActive"`
	SessionID        string               `json:"sessionID,omitempty"`
	Balances         Balances             `json:"balances"`
	MobileMoneyTotal int64                `json:"mobileMoneyTotal"`
	TotalFloat       int64                `json:"totalFloat"`
	FeeRevenue       int64                `json:"feeRevenue"`
	TransactionCount int64                `json:"transactionCount"`
	PerService       []ServiceActivityRow `json:"perService"`
	RecentActivity   []TransactionRecord  `json:"recentActivity"`
}
