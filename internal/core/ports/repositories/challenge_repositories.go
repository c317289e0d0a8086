package repositories

import (
	"context"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// ChallengeReader defines read operations for challenge data.
type ChallengeReader interface {
	// FindChallengeByID retrieves a challenge by its unique identifier.
	FindChallengeByID(ctx context.Context, challengeID string) (*domain.Challenge, error)

	// ListChallenges retrieves challenges newest first using token-based
	// pagination. It returns the challenges, a token for the next page, and an
	// error.
	ListChallenges(ctx context.Context, limit int, nextToken *string) ([]domain.Challenge, *string, error)
}

// ChallengeWriter defines write operations for challenge data.
// budget_used is deliberately absent here: it is mutated only by the ledger
// repository's ApplyChallengePayment.
type ChallengeWriter interface {
	// SaveChallenge inserts a new challenge.
	SaveChallenge(ctx context.Context, challenge domain.Challenge) error
}

// ChallengeRepositoryFacade combines all challenge-related repository interfaces.
type ChallengeRepositoryFacade interface {
	ChallengeReader
	ChallengeWriter
}
