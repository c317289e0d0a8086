package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/clipquest/clipquest_backend/internal/models"
	"github.com/clipquest/clipquest_backend/internal/utils/mapping"
	"github.com/clipquest/clipquest_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChallengeRepository struct {
	BaseRepository
}

// newPgxChallengeRepository creates a new repository for challenge data.
func newPgxChallengeRepository(pool *pgxpool.Pool) portsrepo.ChallengeRepositoryFacade {
	return &PgxChallengeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxChallengeRepository implements portsrepo.ChallengeRepositoryFacade
var _ portsrepo.ChallengeRepositoryFacade = (*PgxChallengeRepository)(nil)

const challengeColumns = `challenge_id, creator_id, title, description, rules, budget, budget_used, reward_rate, target_platform, category, tags, media_url, start_date, end_date, created_at, last_updated_at`

func scanChallenge(row pgx.Row) (*models.Challenge, error) {
	var c models.Challenge
	err := row.Scan(
		&c.ChallengeID,
		&c.CreatorID,
		&c.Title,
		&c.Description,
		&c.Rules,
		&c.Budget,
		&c.BudgetUsed,
		&c.RewardRate,
		&c.TargetPlatform,
		&c.Category,
		&c.Tags,
		&c.MediaURL,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveChallenge inserts a new challenge. budget_used starts at zero and
// is mutated only through the ledger repository.
func (r *PgxChallengeRepository) SaveChallenge(ctx context.Context, challenge domain.Challenge) error {
	modelChallenge := mapping.ToModelChallenge(challenge)
	query := `
		INSERT INTO challenges (` + challengeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelChallenge.ChallengeID,
		modelChallenge.CreatorID,
		modelChallenge.Title,
		modelChallenge.Description,
		modelChallenge.Rules,
		modelChallenge.Budget,
		modelChallenge.BudgetUsed,
		modelChallenge.RewardRate,
		modelChallenge.TargetPlatform,
		modelChallenge.Category,
		modelChallenge.Tags,
		modelChallenge.MediaURL,
		modelChallenge.StartDate,
		modelChallenge.EndDate,
		modelChallenge.CreatedAt,
		modelChallenge.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert challenge "+modelChallenge.ChallengeID, err)
	}
	return nil
}

// FindChallengeByID retrieves a challenge by its unique identifier.
func (r *PgxChallengeRepository) FindChallengeByID(ctx context.Context, challengeID string) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE challenge_id = $1;`

	modelChallenge, err := scanChallenge(r.Pool.QueryRow(ctx, query, challengeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find challenge by ID "+challengeID, err)
	}

	domainChallenge := mapping.ToDomainChallenge(*modelChallenge)
	return &domainChallenge, nil
}

// ListChallenges retrieves challenges newest first using keyset pagination.
func (r *PgxChallengeRepository) ListChallenges(ctx context.Context, limit int, nextToken *string) ([]domain.Challenge, *string, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` WHERE (created_at, challenge_id) < ($1, $2)`
		args = append(args, cursorTime, cursorID)
	}

	query += ` ORDER BY created_at DESC, challenge_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query challenges", err)
	}
	defer rows.Close()

	challenges := []models.Challenge{}
	for rows.Next() {
		modelChallenge, err := scanChallenge(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan challenge row", err)
		}
		challenges = append(challenges, *modelChallenge)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate challenge rows", err)
	}

	var newNextToken *string
	if len(challenges) > limit {
		challenges = challenges[:limit]
		last := challenges[len(challenges)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.ChallengeID)
		newNextToken = &token
	}

	domainChallenges := make([]domain.Challenge, len(challenges))
	for i, c := range challenges {
		domainChallenges[i] = mapping.ToDomainChallenge(c)
	}
	return domainChallenges, newNextToken, nil
}
