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

type PgxSubmissionRepository struct {
	BaseRepository
}

// newPgxSubmissionRepository creates a new repository for submission data.
func newPgxSubmissionRepository(pool *pgxpool.Pool) portsrepo.SubmissionRepositoryFacade {
	return &PgxSubmissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSubmissionRepository implements portsrepo.SubmissionRepositoryFacade
var _ portsrepo.SubmissionRepositoryFacade = (*PgxSubmissionRepository)(nil)

const submissionColumns = `submission_id, challenge_id, user_id, video_url, caption, platform, thumbnail_url, tracked_views, created_at, last_updated_at`

func scanSubmission(row pgx.Row) (*models.Submission, error) {
	var s models.Submission
	err := row.Scan(
		&s.SubmissionID,
		&s.ChallengeID,
		&s.UserID,
		&s.VideoURL,
		&s.Caption,
		&s.Platform,
		&s.ThumbnailURL,
		&s.TrackedViews,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSubmission inserts a new submission. tracked_views starts at zero
// and is bumped only through the ledger repository.
func (r *PgxSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	modelSubmission := mapping.ToModelSubmission(submission)
	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSubmission.SubmissionID,
		modelSubmission.ChallengeID,
		modelSubmission.UserID,
		modelSubmission.VideoURL,
		modelSubmission.Caption,
		modelSubmission.Platform,
		modelSubmission.ThumbnailURL,
		modelSubmission.TrackedViews,
		modelSubmission.CreatedAt,
		modelSubmission.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert submission "+modelSubmission.SubmissionID, err)
	}
	return nil
}

// FindSubmissionByID retrieves a submission by its unique identifier.
func (r *PgxSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE submission_id = $1;`

	modelSubmission, err := scanSubmission(r.Pool.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find submission by ID "+submissionID, err)
	}

	domainSubmission := mapping.ToDomainSubmission(*modelSubmission)
	return &domainSubmission, nil
}

// ListSubmissionsByChallenge retrieves a challenge's submissions newest
// first using keyset pagination.
func (r *PgxSubmissionRepository) ListSubmissionsByChallenge(ctx context.Context, challengeID string, limit int, nextToken *string) ([]domain.Submission, *string, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE challenge_id = $1`
	args := []interface{}{challengeID}

	if nextToken != nil && *nextToken != "" {
		cursorTime, cursorID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid pagination token", err)
		}
		query += ` AND (created_at, submission_id) < ($2, $3)`
		args = append(args, cursorTime, cursorID)
	}

	query += ` ORDER BY created_at DESC, submission_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query submissions for challenge "+challengeID, err)
	}
	defer rows.Close()

	submissions := []models.Submission{}
	for rows.Next() {
		modelSubmission, err := scanSubmission(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan submission row", err)
		}
		submissions = append(submissions, *modelSubmission)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate submission rows", err)
	}

	var newNextToken *string
	if len(submissions) > limit {
		submissions = submissions[:limit]
		last := submissions[len(submissions)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.SubmissionID)
		newNextToken = &token
	}

	domainSubmissions := make([]domain.Submission, len(submissions))
	for i, s := range submissions {
		domainSubmissions[i] = mapping.ToDomainSubmission(s)
	}
	return domainSubmissions, newNextToken, nil
}
