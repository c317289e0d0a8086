package services

import (
	"context"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/clipquest/clipquest_backend/internal/dto"
)

// LedgerSvcFacade is the interface for wallet and transaction operations.
type LedgerSvcFacade interface {
	// GetBalance returns the wallet of the given user.
	GetBalance(ctx context.Context, userID string) (*domain.Wallet, error)

	// TopUp credits the user's spendable balance and records a completed
	// TOPUP transaction. The amount must meet the minimum top-up.
	TopUp(ctx context.Context, userID string, req dto.TopUpRequest) (*domain.Transaction, *domain.Wallet, error)

	// RequestPayout debits the user's payout balance immediately and
	// records a pending PAYOUT transaction.
	RequestPayout(ctx context.Context, userID string, req dto.PayoutRequest) (*domain.Transaction, *domain.Wallet, error)

	// SettlePayout moves a pending PAYOUT transaction to COMPLETED or
	// FAILED. A failed payout restores the debited funds.
	SettlePayout(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)

	// DebitChallengeBudget consumes budget from a challenge and credits
	// the recipient's payout balance. The amount is clamped to the
	// remaining budget; the applied amount is reported in the result.
	DebitChallengeBudget(ctx context.Context, params DebitChallengeBudgetParams) (*portsrepo.ChallengePaymentResult, error)

	// ListTransactions returns the user's transactions newest first,
	// with an optional cursor token for the next page.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// GetTransactionByID returns a single transaction record.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// DebitChallengeBudgetParams carries a budget debit request.
// SubmissionID and Views are optional; when set, the submission's view
// counter is advanced in the same operation.
type DebitChallengeBudgetParams struct {
	ChallengeID     string
	RecipientUserID string
	Amount          int64
	SubmissionID    string
	Views           int64
}
