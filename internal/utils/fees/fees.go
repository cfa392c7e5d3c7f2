package fees

import (
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Default fee schedule. Withdrawal and transfer fees are the kiosk's revenue:
// the floor keeps small transactions profitable, the percentage captures value
// on large ones. Deposits are free to attract float into the kiosk.
const (
	DefaultWithdrawalFloor  int64 = 300
	DefaultWithdrawalRateBP int64 = 200 // basis points, 2%
	DefaultTransferFloor    int64 = 200
	DefaultTransferRateBP   int64 = 150 // basis points, 1.5%
)

var basisPoints = decimal.NewFromInt(10000)

// Policy computes the fee for each operation kind. The zero value is not
// usable; construct with NewPolicy or Default.
type Policy struct {
	withdrawalFloor int64
	withdrawalRate  decimal.Decimal
	transferFloor   int64
	transferRate    decimal.Decimal
}

// NewPolicy builds a fee policy from floors and rates in basis points.
func NewPolicy(withdrawalFloor, withdrawalRateBP, transferFloor, transferRateBP int64) Policy {
	return Policy{
		withdrawalFloor: withdrawalFloor,
		withdrawalRate:  decimal.NewFromInt(withdrawalRateBP).Div(basisPoints),
		transferFloor:   transferFloor,
		transferRate:    decimal.NewFromInt(transferRateBP).Div(basisPoints),
	}
}

// Default returns the standard kiosk fee schedule.
func Default() Policy {
	return NewPolicy(DefaultWithdrawalFloor, DefaultWithdrawalRateBP, DefaultTransferFloor, DefaultTransferRateBP)
}

// Calculate returns the fee in integer Ariary for the given operation and amount.
// Percentage fees are ceiled to the next whole Ariary before the floor is applied.
// Unknown operation kinds are fee-free; amount validation happens upstream.
func (p Policy) Calculate(op domain.OperationKind, amount int64) int64 {
	switch op {
	case domain.Withdrawal:
		return feeWithFloor(amount, p.withdrawalRate, p.withdrawalFloor)
	case domain.Transfer:
		return feeWithFloor(amount, p.transferRate, p.transferFloor)
	}
	return 0
}

func feeWithFloor(amount int64, rate decimal.Decimal, floor int64) int64 {
	pct := decimal.NewFromInt(amount).Mul(rate).Ceil().IntPart()
	if pct < floor {
		return floor
	}
	return pct
}
