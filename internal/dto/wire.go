package dto

import "github.com/hasinarv/cashpoint_backend/internal/core/domain"

// Wire enum values follow the original client vocabulary: lowerCamel service
// names and lowercase operation kinds.
const (
	WireMVola       = "mvola"
	WireOrangeMoney = "orangeMoney"
	WireAirtelMoney = "airtelMoney"

	WireDeposit    = "deposit"
	WireWithdrawal = "withdrawal"
	WireTransfer   = "transfer"
)

// ParseService maps a wire service name onto the domain enumeration.
func ParseService(wire string) (domain.ServiceKind, bool) {
	switch wire {
	case WireMVola:
		return domain.MVola, true
	case WireOrangeMoney:
		return domain.OrangeMoney, true
	case WireAirtelMoney:
		return domain.AirtelMoney, true
	}
	return "", false
}

// ServiceWire maps a domain service onto its wire name.
func ServiceWire(kind domain.ServiceKind) string {
	switch kind {
	case domain.MVola:
		return WireMVola
	case domain.OrangeMoney:
		return WireOrangeMoney
	case domain.AirtelMoney:
		return WireAirtelMoney
	}
	return string(kind)
}

// ParseOperation maps a wire operation name onto the domain enumeration.
func ParseOperation(wire string) (domain.OperationKind, bool) {
	switch wire {
	case WireDeposit:
		return domain.Deposit, true
	case WireWithdrawal:
		return domain.Withdrawal, true
	case WireTransfer:
		return domain.Transfer, true
	}
	return "", false
}

// OperationWire maps a domain operation onto its wire name.
func OperationWire(kind domain.OperationKind) string {
	switch kind {
	case domain.Deposit:
		return WireDeposit
	case domain.Withdrawal:
		return WireWithdrawal
	case domain.Transfer:
		return WireTransfer
	}
	return string(kind)
}

// StatusWire maps a domain transaction status onto its wire name.
func StatusWire(status domain.TransactionStatus) string {
	switch status {
	case domain.StatusCompleted:
		return "completed"
	case domain.StatusFailed:
		return "failed"
	}
	return string(status)
}
