package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

func TestTransactionStatus_TerminalStatus(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TransactionStatus
		want   bool
	}{
		{name: "completed is terminal", status: domain.TransactionCompleted, want: true},
		{name: "failed is terminal", status: domain.TransactionFailed, want: true},
		{name: "pending is not terminal", status: domain.TransactionPending, want: false},
		{name: "unknown status is not terminal", status: domain.TransactionStatus("CANCELLED"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.TerminalStatus())
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want int64
	}{
		{
			name: "top-up credits the user",
			txn: domain.Transaction{
				Amount: 50_000,
				Type:   domain.TransactionTopUp,
				Status: domain.TransactionCompleted,
			},
			want: 50_000,
		},
		{
			name: "payout debits the user",
			txn: domain.Transaction{
				Amount: 20_000,
				Type:   domain.TransactionPayout,
				Status: domain.TransactionPending,
			},
			want: -20_000,
		},
		{
			name: "challenge payment debits the creator",
			txn: domain.Transaction{
				Amount: 5_000,
				Type:   domain.TransactionChallengePayment,
				Status: domain.TransactionCompleted,
			},
			want: -5_000,
		},
		{
			name: "failed payout nets to zero",
			txn: domain.Transaction{
				Amount: 20_000,
				Type:   domain.TransactionPayout,
				Status: domain.TransactionFailed,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.SignedAmount())
		})
	}
}

// The net balance change derivable from a user's records must equal the
// sum of their signed amounts.
func TestTransaction_SignedAmountsReconcile(t *testing.T) {
	history := []domain.Transaction{
		{Amount: 100_000, Type: domain.TransactionTopUp, Status: domain.TransactionCompleted},
		{Amount: 30_000, Type: domain.TransactionPayout, Status: domain.TransactionCompleted},
		{Amount: 20_000, Type: domain.TransactionPayout, Status: domain.TransactionFailed},
	}

	var net int64
	for _, txn := range history {
		net += txn.SignedAmount()
	}

	assert.Equal(t, int64(70_000), net)
}

func TestChallenge_Status(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		challenge domain.Challenge
		want      domain.ChallengeStatus
	}{
		{
			name: "active with remaining budget and future end date",
			challenge: domain.Challenge{
				Budget:     100_000,
				BudgetUsed: 95_000,
				EndDate:    now.Add(24 * time.Hour),
			},
			want: domain.ChallengeActive,
		},
		{
			name: "ended when budget is exhausted",
			challenge: domain.Challenge{
				Budget:     100_000,
				BudgetUsed: 100_000,
				EndDate:    now.Add(24 * time.Hour),
			},
			want: domain.ChallengeEnded,
		},
		{
			name: "ended when past end date",
			challenge: domain.Challenge{
				Budget:     100_000,
				BudgetUsed: 0,
				EndDate:    now.Add(-time.Hour),
			},
			want: domain.ChallengeEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.challenge.Status(now))
		})
	}
}

func TestChallenge_RemainingBudget(t *testing.T) {
	c := domain.Challenge{Budget: 100_000, BudgetUsed: 95_000}
	assert.Equal(t, int64(5_000), c.RemainingBudget())
}
