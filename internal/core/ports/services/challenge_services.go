package services

import (
	"context"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/clipquest/clipquest_backend/internal/dto"
)

// ChallengeSvcFacade is the interface for challenge lifecycle operations.
type ChallengeSvcFacade interface {
	// CreateChallenge creates a challenge with a fixed budget.
	// Only CREATOR accounts may create challenges.
	CreateChallenge(ctx context.Context, creatorID string, req dto.CreateChallengeRequest) (*domain.Challenge, error)

	// GetChallengeByID returns the challenge with the given ID.
	GetChallengeByID(ctx context.Context, challengeID string) (*domain.Challenge, error)

	// ListChallenges returns challenges newest first with an optional
	// cursor token for the next page.
	ListChallenges(ctx context.Context, limit int, nextToken *string) ([]domain.Challenge, *string, error)
}

// SubmissionSvcFacade is the interface for clip submission operations.
type SubmissionSvcFacade interface {
	// SubmitToChallenge records a clip submission against an active
	// challenge. Only CLIPPER accounts may submit.
	SubmitToChallenge(ctx context.Context, userID string, challengeID string, req dto.CreateSubmissionRequest) (*domain.Submission, error)

	// GetSubmissionByID returns the submission with the given ID.
	GetSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error)

	// ListSubmissionsByChallenge returns a challenge's submissions
	// newest first with an optional cursor token.
	ListSubmissionsByChallenge(ctx context.Context, challengeID string, limit int, nextToken *string) ([]domain.Submission, *string, error)

	// RecordViews advances a submission's view counter and pays the
	// earned reward out of the challenge budget.
	RecordViews(ctx context.Context, submissionID string, views int64) (*portsrepo.ChallengePaymentResult, error)
}
