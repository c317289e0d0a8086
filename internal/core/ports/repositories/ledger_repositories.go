package repositories

import (
	"context"
	"time"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// ChallengePaymentParams carries everything the repository needs to settle a
// challenge reward in one database transaction: the audit record (written
// against the challenge creator, amount pre-clamp), the challenge and
// recipient rows to mutate, and optionally the submission whose tracked view
// counter produced the reward.
type ChallengePaymentParams struct {
	Record          domain.Transaction
	ChallengeID     string
	RecipientUserID string
	SubmissionID    string // optional; when set, tracked_views is bumped by Views
	Views           int64
}

// ChallengePaymentResult reports the outcome of a settled challenge payment.
// AppliedAmount may be smaller than the requested amount when the remaining
// budget clamped it.
type ChallengePaymentResult struct {
	AppliedAmount int64
	BudgetUsed    int64
	PayoutBalance int64
}

// WalletReader defines read operations for wallet balances.
type WalletReader interface {
	// FindWalletByUserID retrieves the wallet for a user.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

// TransactionReader defines read operations for the transaction log.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction record.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByUser retrieves a user's records newest first using
	// token-based pagination. It returns the records, a token for the next
	// page, and an error.
	ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// LedgerWriter defines the atomic balance-affecting operations. Each call is a
// single database transaction pairing the balance mutation with the record
// append; a failure anywhere rolls back both.
type LedgerWriter interface {
	// CreditTopUp locks the wallet row, credits the spendable balance by the
	// record amount and appends the COMPLETED record. Returns the updated wallet.
	CreditTopUp(ctx context.Context, record domain.Transaction) (*domain.Wallet, error)

	// DebitPayout locks the wallet row, re-checks the payout balance under the
	// lock, debits it by the record amount and appends the PENDING record.
	// Returns apperrors.ErrInsufficientFunds without any write when the balance
	// no longer covers the amount.
	DebitPayout(ctx context.Context, record domain.Transaction) (*domain.Wallet, error)

	// SettlePayout transitions a PENDING payout record to COMPLETED or FAILED.
	// On FAILED the payout balance is credited back by the record amount in the
	// same transaction. Returns apperrors.ErrInvalidTransition when the record
	// is not PENDING or the target is not terminal.
	SettlePayout(ctx context.Context, transactionID string, status domain.TransactionStatus, now time.Time) (*domain.Transaction, *domain.Wallet, error)

	// ApplyChallengePayment locks the challenge and recipient wallet rows,
	// clamps the record amount to the remaining budget, increments budget_used,
	// credits the recipient payout balance and appends the record against the
	// creator. A clamp to zero skips the credit and the record; the view
	// counter update still applies.
	ApplyChallengePayment(ctx context.Context, params ChallengePaymentParams) (*ChallengePaymentResult, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	WalletReader
	TransactionReader
	LedgerWriter
}
