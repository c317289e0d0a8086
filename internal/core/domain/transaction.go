package domain

import "time"

// TransactionType classifies a balance-affecting event.
type TransactionType string

const (
	TransactionTopUp            TransactionType = "TOPUP"
	TransactionPayout           TransactionType = "PAYOUT"
	TransactionChallengePayment TransactionType = "CHALLENGE_PAYMENT"
)

// TransactionStatus is the lifecycle state of a transaction record.
// Records are created PENDING or COMPLETED; a PENDING record moves to
// COMPLETED or FAILED exactly once and is otherwise immutable.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// TerminalStatus reports whether s is one of the two allowed terminal states.
func (s TransactionStatus) TerminalStatus() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

// Transaction is an immutable audit record of a single balance-affecting event.
// Amount is always stored positive; the sign is implied by Type.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	UserID        string            `json:"userID"`        // FK -> users.user_id
	Amount        int64             `json:"amount"`        // Positive, minor currency units
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// SignedAmount returns the amount with the sign implied by the record type:
// top-ups credit the user, payouts and challenge payments debit the user.
// FAILED records net to zero since their balance effect was reverted.
func (t Transaction) SignedAmount() int64 {
	if t.Status == TransactionFailed {
		return 0
	}
	switch t.Type {
	case TransactionTopUp:
		return t.Amount
	default:
		return -t.Amount
	}
}
