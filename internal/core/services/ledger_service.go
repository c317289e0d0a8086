package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/middleware"
)

const (
	// MinTopUpAmount is the smallest accepted top-up, in minor currency units.
	MinTopUpAmount int64 = 10_000
	// MinPayoutAmount is the smallest accepted payout, in minor currency units.
	MinPayoutAmount int64 = 10_000

	defaultListLimit = 20
	maxListLimit     = 100
)

// ledgerService provides wallet and transaction operations.
type ledgerService struct {
	ledgerRepo    portsrepo.LedgerRepositoryFacade
	challengeRepo portsrepo.ChallengeRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, challengeRepo portsrepo.ChallengeRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:    ledgerRepo,
		challengeRepo: challengeRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetBalance returns the wallet of the given user.
func (s *ledgerService) GetBalance(ctx context.Context, userID string) (*domain.Wallet, error) {
	return s.ledgerRepo.FindWalletByUserID(ctx, userID)
}

// TopUp credits the user's spendable balance and appends a COMPLETED
// TOPUP record. Validation happens before any state is touched.
func (s *ledgerService) TopUp(ctx context.Context, userID string, req dto.TopUpRequest) (*domain.Transaction, *domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount < MinTopUpAmount {
		return nil, nil, fmt.Errorf("%w: top-up amount must be at least %d", apperrors.ErrInvalidAmount, MinTopUpAmount)
	}

	now := time.Now()
	record := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Type:          domain.TransactionTopUp,
		Status:        domain.TransactionCompleted,
		Description:   fmt.Sprintf("Wallet top-up via %s", req.Method),
		CreatedAt:     now,
	}

	wallet, err := s.ledgerRepo.CreditTopUp(ctx, record)
	if err != nil {
		logger.Error("Failed to credit top-up", "user_id", userID, "error", err)
		return nil, nil, err
	}

	logger.Info("Top-up completed", "user_id", userID, "transaction_id", record.TransactionID, "amount", req.Amount)
	return &record, wallet, nil
}

// RequestPayout debits the user's payout balance immediately and
// appends a PENDING PAYOUT record. The immediate debit is the guard
// against concurrent over-withdrawal.
func (s *ledgerService) RequestPayout(ctx context.Context, userID string, req dto.PayoutRequest) (*domain.Transaction, *domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount < MinPayoutAmount {
		return nil, nil, fmt.Errorf("%w: payout amount must be at least %d", apperrors.ErrInvalidAmount, MinPayoutAmount)
	}

	now := time.Now()
	record := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        req.Amount,
		Type:          domain.TransactionPayout,
		Status:        domain.TransactionPending,
		Description:   fmt.Sprintf("Payout to bank account %s", req.BankAccount),
		CreatedAt:     now,
	}

	wallet, err := s.ledgerRepo.DebitPayout(ctx, record)
	if err != nil {
		logger.Warn("Failed to request payout", "user_id", userID, "error", err)
		return nil, nil, err
	}

	logger.Info("Payout requested", "user_id", userID, "transaction_id", record.TransactionID, "amount", req.Amount)
	return &record, wallet, nil
}

// SettlePayout moves a pending PAYOUT record to COMPLETED or FAILED.
// FAILED restores the debited funds; COMPLETED leaves balances alone
// since the funds were already deducted at request time.
func (s *ledgerService) SettlePayout(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !status.TerminalStatus() {
		return nil, fmt.Errorf("%w: payout may only settle to COMPLETED or FAILED", apperrors.ErrInvalidTransition)
	}

	record, _, err := s.ledgerRepo.SettlePayout(ctx, transactionID, status, time.Now())
	if err != nil {
		logger.Warn("Failed to settle payout", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	logger.Info("Payout settled", "transaction_id", transactionID, "status", string(status))
	return record, nil
}

// DebitChallengeBudget consumes budget from a challenge and credits the
// recipient's payout balance, clamping the amount to the remaining
// budget. The CHALLENGE_PAYMENT record is written against the creator,
// whose funds the budget represents.
func (s *ledgerService) DebitChallengeBudget(ctx context.Context, params portssvc.DebitChallengeBudgetParams) (*portsrepo.ChallengePaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Zero is allowed: a view increment can earn less than one minor
	// unit, and the view bump still has to land.
	if params.Amount < 0 {
		return nil, fmt.Errorf("%w: challenge debit must not be negative", apperrors.ErrInvalidAmount)
	}

	challenge, err := s.challengeRepo.FindChallengeByID(ctx, params.ChallengeID)
	if err != nil {
		return nil, err
	}

	record := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        challenge.CreatorID,
		Amount:        params.Amount,
		Type:          domain.TransactionChallengePayment,
		Status:        domain.TransactionCompleted,
		Description:   fmt.Sprintf("%s - Rewards Payment", challenge.Title),
		CreatedAt:     time.Now(),
	}

	result, err := s.ledgerRepo.ApplyChallengePayment(ctx, portsrepo.ChallengePaymentParams{
		Record:          record,
		ChallengeID:     params.ChallengeID,
		RecipientUserID: params.RecipientUserID,
		SubmissionID:    params.SubmissionID,
		Views:           params.Views,
	})
	if err != nil {
		logger.Error("Failed to apply challenge payment", "challenge_id", params.ChallengeID, "error", err)
		return nil, err
	}

	if result.AppliedAmount < params.Amount {
		logger.Warn("Challenge payment clamped to remaining budget",
			"challenge_id", params.ChallengeID,
			"requested", params.Amount,
			"applied", result.AppliedAmount,
		)
	}

	logger.Info("Challenge budget debited",
		"challenge_id", params.ChallengeID,
		"recipient_user_id", params.RecipientUserID,
		"applied", result.AppliedAmount,
	)
	return result, nil
}

// ListTransactions returns the user's transactions newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.ledgerRepo.ListTransactionsByUser(ctx, userID, limit, nextToken)
}

// GetTransactionByID returns a single transaction record.
func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.ledgerRepo.FindTransactionByID(ctx, transactionID)
}
