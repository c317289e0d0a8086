package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/middleware"
	"github.com/clipquest/clipquest_backend/internal/utils/rewards"
)

// placeholderThumbnailURL is used until real thumbnail scraping exists.
const placeholderThumbnailURL = "https://placehold.co/600x800?text=Clip"

// submissionService provides clip submission operations.
type submissionService struct {
	submissionRepo portsrepo.SubmissionRepositoryFacade
	challengeRepo  portsrepo.ChallengeRepositoryFacade
	userSvc        portssvc.UserSvcFacade
	ledgerSvc      portssvc.LedgerSvcFacade
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	submissionRepo portsrepo.SubmissionRepositoryFacade,
	challengeRepo portsrepo.ChallengeRepositoryFacade,
	userSvc portssvc.UserSvcFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
) portssvc.SubmissionSvcFacade {
	return &submissionService{
		submissionRepo: submissionRepo,
		challengeRepo:  challengeRepo,
		userSvc:        userSvc,
		ledgerSvc:      ledgerSvc,
	}
}

// Ensure submissionService implements the portssvc.SubmissionSvcFacade interface
var _ portssvc.SubmissionSvcFacade = (*submissionService)(nil)

// detectPlatform infers the platform from the video URL host.
func detectPlatform(videoURL string) (domain.Platform, error) {
	switch {
	case strings.Contains(videoURL, "instagram.com"):
		return domain.PlatformInstagram, nil
	case strings.Contains(videoURL, "tiktok.com"):
		return domain.PlatformTikTok, nil
	default:
		return "", fmt.Errorf("%w: video URL must point to instagram.com or tiktok.com", apperrors.ErrValidation)
	}
}

// SubmitToChallenge records a clip submission against an active
// challenge. Only CLIPPER accounts may submit.
func (s *submissionService) SubmitToChallenge(ctx context.Context, userID string, challengeID string, req dto.CreateSubmissionRequest) (*domain.Submission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleClipper {
		return nil, fmt.Errorf("%w: only clippers may submit to challenges", apperrors.ErrForbidden)
	}

	challenge, err := s.challengeRepo.FindChallengeByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	if challenge.BudgetUsed >= challenge.Budget {
		return nil, fmt.Errorf("%w: challenge has no reward budget remaining", apperrors.ErrBudgetExhausted)
	}
	now := time.Now()
	if challenge.Status(now) != domain.ChallengeActive {
		return nil, fmt.Errorf("%w: challenge is no longer active", apperrors.ErrConflict)
	}

	platform, err := detectPlatform(req.VideoURL)
	if err != nil {
		return nil, err
	}
	if challenge.TargetPlatform != domain.PlatformAny && challenge.TargetPlatform != platform {
		return nil, fmt.Errorf("%w: challenge only accepts %s clips", apperrors.ErrValidation, challenge.TargetPlatform)
	}

	submission := domain.Submission{
		SubmissionID: uuid.NewString(),
		ChallengeID:  challengeID,
		UserID:       userID,
		VideoURL:     req.VideoURL,
		Caption:      req.Caption,
		Platform:     platform,
		ThumbnailURL: placeholderThumbnailURL,
		TrackedViews: 0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.submissionRepo.SaveSubmission(ctx, submission); err != nil {
		logger.Error("Failed to save submission", "challenge_id", challengeID, "user_id", userID, "error", err)
		return nil, err
	}

	logger.Info("Submission created", "submission_id", submission.SubmissionID, "challenge_id", challengeID, "platform", string(platform))
	return &submission, nil
}

// GetSubmissionByID returns the submission with the given ID.
func (s *submissionService) GetSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	return s.submissionRepo.FindSubmissionByID(ctx, submissionID)
}

// ListSubmissionsByChallenge returns a challenge's submissions newest first.
func (s *submissionService) ListSubmissionsByChallenge(ctx context.Context, challengeID string, limit int, nextToken *string) ([]domain.Submission, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.submissionRepo.ListSubmissionsByChallenge(ctx, challengeID, limit, nextToken)
}

// RecordViews advances a submission's view counter and converts the
// increment into a reward paid out of the challenge budget. A reward
// below one minor unit still records the views but moves no money.
func (s *submissionService) RecordViews(ctx context.Context, submissionID string, views int64) (*portsrepo.ChallengePaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if views <= 0 {
		return nil, fmt.Errorf("%w: view increment must be positive", apperrors.ErrValidation)
	}

	submission, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.challengeRepo.FindChallengeByID(ctx, submission.ChallengeID)
	if err != nil {
		return nil, err
	}

	reward := rewards.RewardForViews(views, challenge.RewardRate)

	result, err := s.ledgerSvc.DebitChallengeBudget(ctx, portssvc.DebitChallengeBudgetParams{
		ChallengeID:     submission.ChallengeID,
		RecipientUserID: submission.UserID,
		Amount:          reward,
		SubmissionID:    submissionID,
		Views:           views,
	})
	if err != nil {
		logger.Error("Failed to pay reward for views", "submission_id", submissionID, "error", err)
		return nil, err
	}

	logger.Info("Views recorded",
		"submission_id", submissionID,
		"views", views,
		"reward_applied", result.AppliedAmount,
	)
	return result, nil
}
