package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCashBalance is returned when an operation would drive the cash pool negative.
	ErrInsufficientCashBalance = errors.New("insufficient cash balance")
	// ErrInsufficientServiceBalance is returned when an operation would drive a service pool negative.
	ErrInsufficientServiceBalance = errors.New("insufficient service balance")
	// ErrUnknownService is returned for a service outside the closed enumeration.
	ErrUnknownService = errors.New("unknown mobile money service")
	// ErrUnknownOperation is returned for an operation kind outside the closed enumeration.
	ErrUnknownOperation = errors.New("unknown operation kind")
)

// Balances is the kiosk float at a point in time: the cash drawer plus one pool
// per mobile-money service. All four fields are integer Ariary and must stay >= 0.
//
// Fees are informational and never applied here, so the four-field total is
// invariant under every operation: a deposit or transfer moves value from a
// service pool into cash, a withdrawal moves it back.
type Balances struct {
	Cash        int64 `json:"cash"`
	MVola       int64 `json:"mvola"`
	OrangeMoney int64 `json:"orangeMoney"`
	AirtelMoney int64 `json:"airtelMoney"`
}

// Service returns the balance held in the given service pool.
func (b Balances) Service(kind ServiceKind) int64 {
	switch kind {
	case MVola:
		return b.MVola
	case OrangeMoney:
		return b.OrangeMoney
	case AirtelMoney:
		return b.AirtelMoney
	}
	return 0
}

func (b *Balances) setService(kind ServiceKind, value int64) {
	switch kind {
	case MVola:
		b.MVola = value
	case OrangeMoney:
		b.OrangeMoney = value
	case AirtelMoney:
		b.AirtelMoney = value
	}
}

// MobileMoneyTotal sums the three service pools.
func (b Balances) MobileMoneyTotal() int64 {
	return b.MVola + b.OrangeMoney + b.AirtelMoney
}

// Total sums cash and all service pools.
func (b Balances) Total() int64 {
	return b.Cash + b.MobileMoneyTotal()
}

// NonNegative reports whether every field is >= 0.
func (b Balances) NonNegative() bool {
	return b.Cash >= 0 && b.MVola >= 0 && b.OrangeMoney >= 0 && b.AirtelMoney >= 0
}

// Apply validates and applies one operation's balance delta, returning the
// resulting balances. The receiver is never mutated: on any error the caller's
// balances are untouched (all-or-nothing).
//
// Deltas, from the agent's perspective:
//   - DEPOSIT:    cash += amount; service -= amount (service must cover amount)
//   - WITHDRAWAL: cash -= amount; service += amount (cash must cover amount, fee excluded)
//   - TRANSFER:   cash += amount; service -= amount (service must cover amount)
func (b Balances) Apply(op OperationKind, service ServiceKind, amount int64) (Balances, error) {
	if !service.IsValid() {
		return b, fmt.Errorf("%w: %q", ErrUnknownService, service)
	}
	if amount <= 0 {
		return b, fmt.Errorf("operation amount must be positive, got %d", amount)
	}

	next := b
	switch op {
	case Deposit, Transfer:
		available := next.Service(service)
		if available < amount {
			return b, fmt.Errorf("%w: %s requested %d, available %d",
				ErrInsufficientServiceBalance, service.DisplayName(), amount, available)
		}
		next.Cash += amount
		next.setService(service, available-amount)
	case Withdrawal:
		if next.Cash < amount {
			return b, fmt.Errorf("%w: requested %d, available %d",
				ErrInsufficientCashBalance, amount, next.Cash)
		}
		next.Cash -= amount
		next.setService(service, next.Service(service)+amount)
	default:
		return b, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	return next, nil
}
