package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/clipquest/clipquest_backend/internal/models"
	"github.com/clipquest/clipquest_backend/internal/utils/mapping"
	"github.com/clipquest/clipquest_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for wallet and transaction data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const walletColumns = `user_id, spendable_balance, payout_balance, created_at, last_updated_at`

func scanWallet(row pgx.Row) (*models.Wallet, error) {
	var w models.Wallet
	err := row.Scan(
		&w.UserID,
		&w.SpendableBalance,
		&w.PayoutBalance,
		&w.CreatedAt,
		&w.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// FindWalletByUserID retrieves a wallet without locking it.
func (r *PgxLedgerRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1;`

	modelWallet, err := scanWallet(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet for user "+userID, err)
	}

	domainWallet := mapping.ToDomainWallet(*modelWallet)
	return &domainWallet, nil
}

// findWalletForUpdate retrieves a wallet and locks the row. Must be
// called within a transaction.
func (r *PgxLedgerRepository) findWalletForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 FOR UPDATE;`

	modelWallet, err := scanWallet(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock wallet for user "+userID, err)
	}
	return modelWallet, nil
}

// insertTransaction appends a transaction row within a transaction.
func (r *PgxLedgerRepository) insertTransaction(ctx context.Context, tx pgx.Tx, record models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, user_id, amount, type, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		record.TransactionID,
		record.UserID,
		record.Amount,
		record.Type,
		record.Status,
		record.Description,
		record.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+record.TransactionID, err)
	}
	return nil
}

// updateWalletBalances applies signed deltas to a locked wallet row.
func (r *PgxLedgerRepository) updateWalletBalances(ctx context.Context, tx pgx.Tx, userID string, spendableDelta, payoutDelta int64, now time.Time) (*models.Wallet, error) {
	query := `
		UPDATE wallets
		SET spendable_balance = spendable_balance + $2,
		    payout_balance = payout_balance + $3,
		    last_updated_at = $4
		WHERE user_id = $1
		RETURNING ` + walletColumns + `;
	`
	modelWallet, err := scanWallet(tx.QueryRow(ctx, query, userID, spendableDelta, payoutDelta, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to update wallet for user "+userID, err)
	}
	return modelWallet, nil
}

// CreditTopUp credits the spendable balance and appends a completed
// TOPUP record within one database transaction.
func (r *PgxLedgerRepository) CreditTopUp(ctx context.Context, record domain.Transaction) (*domain.Wallet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.findWalletForUpdate(ctx, tx, record.UserID); err != nil {
		return nil, err
	}

	updated, err := r.updateWalletBalances(ctx, tx, record.UserID, record.Amount, 0, record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := r.insertTransaction(ctx, tx, mapping.ToModelTransaction(record)); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainWallet := mapping.ToDomainWallet(*updated)
	return &domainWallet, nil
}

// DebitPayout debits the payout balance immediately and appends a
// pending PAYOUT record within one database transaction. The debit
// under a row lock is what prevents concurrent over-withdrawal.
func (r *PgxLedgerRepository) DebitPayout(ctx context.Context, record domain.Transaction) (*domain.Wallet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	locked, err := r.findWalletForUpdate(ctx, tx, record.UserID)
	if err != nil {
		return nil, err
	}
	if locked.PayoutBalance < record.Amount {
		return nil, apperrors.ErrInsufficientFunds
	}

	updated, err := r.updateWalletBalances(ctx, tx, record.UserID, 0, -record.Amount, record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := r.insertTransaction(ctx, tx, mapping.ToModelTransaction(record)); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainWallet := mapping.ToDomainWallet(*updated)
	return &domainWallet, nil
}

// SettlePayout moves a pending PAYOUT record to a terminal status. A
// FAILED settlement restores the debited funds to the payout balance.
func (r *PgxLedgerRepository) SettlePayout(ctx context.Context, transactionID string, status domain.TransactionStatus, now time.Time) (*domain.Transaction, *domain.Wallet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		SELECT transaction_id, user_id, amount, type, status, description, created_at
		FROM transactions
		WHERE transaction_id = $1
		FOR UPDATE;
	`
	var record models.Transaction
	err = tx.QueryRow(ctx, query, transactionID).Scan(
		&record.TransactionID,
		&record.UserID,
		&record.Amount,
		&record.Type,
		&record.Status,
		&record.Description,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}

	if record.Type != models.TransactionPayout || record.Status != models.TransactionPending {
		return nil, nil, apperrors.ErrInvalidTransition
	}

	_, err = tx.Exec(ctx, `UPDATE transactions SET status = $2 WHERE transaction_id = $1;`, transactionID, models.TransactionStatus(status))
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to update transaction status for "+transactionID, err)
	}
	record.Status = models.TransactionStatus(status)

	if _, err := r.findWalletForUpdate(ctx, tx, record.UserID); err != nil {
		return nil, nil, err
	}

	var payoutDelta int64
	if status == domain.TransactionFailed {
		payoutDelta = record.Amount
	}
	updated, err := r.updateWalletBalances(ctx, tx, record.UserID, 0, payoutDelta, now)
	if err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	domainRecord := mapping.ToDomainTransaction(record)
	domainWallet := mapping.ToDomainWallet(*updated)
	return &domainRecord, &domainWallet, nil
}

// ApplyChallengePayment consumes budget from a challenge, credits the
// recipient's payout balance, and appends a completed
// CHALLENGE_PAYMENT record against the challenge creator, all within
// one database transaction. The amount is clamped to the remaining
// budget; a zero clamp skips the credit and the record entirely. When
// params.SubmissionID is set, the submission's view counter is
// advanced in the same transaction.
func (r *PgxLedgerRepository) ApplyChallengePayment(ctx context.Context, params portsrepo.ChallengePaymentParams) (*portsrepo.ChallengePaymentResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var budget, budgetUsed int64
	err = tx.QueryRow(ctx, `SELECT budget, budget_used FROM challenges WHERE challenge_id = $1 FOR UPDATE;`, params.ChallengeID).
		Scan(&budget, &budgetUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock challenge "+params.ChallengeID, err)
	}

	applied := params.Record.Amount
	if remaining := budget - budgetUsed; applied > remaining {
		applied = remaining
	}
	if applied < 0 {
		applied = 0
	}

	now := params.Record.CreatedAt
	payoutBalance := int64(0)

	if applied > 0 {
		_, err = tx.Exec(ctx, `UPDATE challenges SET budget_used = budget_used + $2, last_updated_at = $3 WHERE challenge_id = $1;`,
			params.ChallengeID, applied, now)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to update budget for challenge "+params.ChallengeID, err)
		}
		budgetUsed += applied

		if _, err := r.findWalletForUpdate(ctx, tx, params.RecipientUserID); err != nil {
			return nil, err
		}
		updated, err := r.updateWalletBalances(ctx, tx, params.RecipientUserID, 0, applied, now)
		if err != nil {
			return nil, err
		}
		payoutBalance = updated.PayoutBalance

		record := mapping.ToModelTransaction(params.Record)
		record.Amount = applied
		if err := r.insertTransaction(ctx, tx, record); err != nil {
			return nil, err
		}
	} else {
		wallet, err := r.findWalletForUpdate(ctx, tx, params.RecipientUserID)
		if err != nil {
			return nil, err
		}
		payoutBalance = wallet.PayoutBalance
	}

	if params.SubmissionID != "" && params.Views > 0 {
		ct, err := tx.Exec(ctx, `UPDATE submissions SET tracked_views = tracked_views + $2, last_updated_at = $3 WHERE submission_id = $1;`,
			params.SubmissionID, params.Views, now)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to update views for submission "+params.SubmissionID, err)
		}
		if ct.RowsAffected() == 0 {
			return nil, apperrors.ErrNotFound
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &portsrepo.ChallengePaymentResult{
		AppliedAmount: applied,
		BudgetUsed:    budgetUsed,
		PayoutBalance: payoutBalance,
	}, nil
}

// FindTransactionByID retrieves a single transaction record.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, user_id, amount, type, status, description, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var record models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&record.TransactionID,
		&record.UserID,
		&record.Amount,
		&record.Type,
		&record.Status,
		&record.Description,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	domainRecord := mapping.ToDomainTransaction(record)
	return &domainRecord, nil
}

// ListTransactionsByUser retrieves a user's transactions newest first
// using keyset pagination.
func (r *PgxLedgerRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `
		SELECT transaction_id, user_id, amount, type, status, description, created_at
		FROM transactions
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	// Fetch one extra row to determine whether another page exists
	query += ` ORDER BY created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for user "+userID, err)
	}
	defer rows.Close()

	records := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.UserID,
			&t.Amount,
			&t.Type,
			&t.Status,
			&t.Description,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for user "+userID, err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate transaction rows for user "+userID, err)
	}

	var newNextToken *string
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(records), newNextToken, nil
}
