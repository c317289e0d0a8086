package pgsql

import (
	"context"
	"errors"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/clipquest/clipquest_backend/internal/models"
	"github.com/clipquest/clipquest_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, name, email, password_hash, role, avatar_url, created_at, last_updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUserWithWallet persists a new user together with their zeroed
// wallet in one database transaction.
func (r *PgxUserRepository) SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		modelUser := mapping.ToModelUser(user)
		userQuery := `
			INSERT INTO users (user_id, name, email, password_hash, role, avatar_url, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`
		_, err := tx.Exec(ctx, userQuery,
			modelUser.UserID,
			modelUser.Name,
			modelUser.Email,
			modelUser.PasswordHash,
			modelUser.Role,
			modelUser.AvatarURL,
			modelUser.CreatedAt,
			modelUser.LastUpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return apperrors.ErrDuplicate
			}
			return apperrors.NewAppError(500, "failed to insert user "+modelUser.UserID, err)
		}

		modelWallet := mapping.ToModelWallet(wallet)
		walletQuery := `
			INSERT INTO wallets (user_id, spendable_balance, payout_balance, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5);
		`
		_, err = tx.Exec(ctx, walletQuery,
			modelWallet.UserID,
			modelWallet.SpendableBalance,
			modelWallet.PayoutBalance,
			modelWallet.CreatedAt,
			modelWallet.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert wallet for user "+modelWallet.UserID, err)
		}
		return nil
	})
}

// FindUserByID retrieves a user by their unique identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`

	modelUser, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}

	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

// FindUserByEmail retrieves a user by their email address.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	modelUser, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by email", err)
	}

	domainUser := mapping.ToDomainUser(*modelUser)
	return &domainUser, nil
}

// UpdateUser updates the mutable profile fields of an existing user.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, avatar_url = $3, last_updated_at = $4
		WHERE user_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, user.UserID, user.Name, user.AvatarURL, user.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
