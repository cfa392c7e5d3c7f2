package fees_test

import (
	"testing"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/utils/fees"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Calculate(t *testing.T) {
	policy := fees.Default()

	tests := []struct {
		name   string
		op     domain.OperationKind
		amount int64
		want   int64
	}{
		{"deposit is always free", domain.Deposit, 10000, 0},
		{"deposit large amount still free", domain.Deposit, 10000000, 0},
		{"withdrawal floor wins on small amounts", domain.Withdrawal, 10000, 300},
		{"withdrawal floor boundary", domain.Withdrawal, 15000, 300},
		{"withdrawal percentage just above floor", domain.Withdrawal, 15050, 301},
		{"withdrawal percentage on large amount", domain.Withdrawal, 100000, 2000},
		{"transfer floor wins on small amounts", domain.Transfer, 10000, 200},
		{"transfer percentage on large amount", domain.Transfer, 100000, 1500},
		{"transfer fractional product is ceiled", domain.Transfer, 13341, 201}, // 1.5% = 200.115
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Calculate(tt.op, tt.amount))
		})
	}
}

func TestNewPolicy_CustomSchedule(t *testing.T) {
	policy := fees.NewPolicy(500, 300, 100, 100) // 3% / 1% with custom floors

	assert.Equal(t, int64(500), policy.Calculate(domain.Withdrawal, 10000))  // 300 < floor 500
	assert.Equal(t, int64(3000), policy.Calculate(domain.Withdrawal, 100000))
	assert.Equal(t, int64(100), policy.Calculate(domain.Transfer, 5000))
	assert.Equal(t, int64(1000), policy.Calculate(domain.Transfer, 100000))
}
