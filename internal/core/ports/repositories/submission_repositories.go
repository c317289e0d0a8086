package repositories

import (
	"context"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// SubmissionReader defines read operations for submission data.
type SubmissionReader interface {
	// FindSubmissionByID retrieves a submission by its unique identifier.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error)

	// ListSubmissionsByChallenge retrieves a challenge's submissions newest
	// first using token-based pagination.
	ListSubmissionsByChallenge(ctx context.Context, challengeID string, limit int, nextToken *string) ([]domain.Submission, *string, error)
}

// SubmissionWriter defines write operations for submission data.
// tracked_views is bumped by the ledger repository as part of reward
// settlement, not through this interface.
type SubmissionWriter interface {
	// SaveSubmission inserts a new submission.
	SaveSubmission(ctx context.Context, submission domain.Submission) error
}

// SubmissionRepositoryFacade combines all submission-related repository interfaces.
type SubmissionRepositoryFacade interface {
	SubmissionReader
	SubmissionWriter
}
