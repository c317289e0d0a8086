package models

import "time"

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

const (
	TransactionTopUp            TransactionType = "TOPUP"
	TransactionPayout           TransactionType = "PAYOUT"
	TransactionChallengePayment TransactionType = "CHALLENGE_PAYMENT"
)

// TransactionStatus mirrors domain.TransactionStatus for storage.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Transaction represents a row in the transactions table.
// Rows are append-only; only the status column is ever updated.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	UserID        string            `db:"user_id"`
	Amount        int64             `db:"amount"` // Always positive
	Type          TransactionType   `db:"type"`
	Status        TransactionStatus `db:"status"`
	Description   string            `db:"description"`
	CreatedAt     time.Time         `db:"created_at"`
}
