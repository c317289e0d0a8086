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

// challengeService provides challenge lifecycle operations.
type challengeService struct {
	challengeRepo portsrepo.ChallengeRepositoryFacade
	userSvc       portssvc.UserSvcFacade
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(challengeRepo portsrepo.ChallengeRepositoryFacade, userSvc portssvc.UserSvcFacade) portssvc.ChallengeSvcFacade {
	return &challengeService{
		challengeRepo: challengeRepo,
		userSvc:       userSvc,
	}
}

// Ensure challengeService implements the portssvc.ChallengeSvcFacade interface
var _ portssvc.ChallengeSvcFacade = (*challengeService)(nil)

// CreateChallenge creates a challenge with a fixed budget. Only
// CREATOR accounts may create challenges.
func (s *challengeService) CreateChallenge(ctx context.Context, creatorID string, req dto.CreateChallengeRequest) (*domain.Challenge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	creator, err := s.userSvc.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator.Role != domain.RoleCreator {
		return nil, fmt.Errorf("%w: only creators may create challenges", apperrors.ErrForbidden)
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}

	now := time.Now()
	challenge := domain.Challenge{
		ChallengeID:    uuid.NewString(),
		CreatorID:      creatorID,
		Title:          req.Title,
		Description:    req.Description,
		Rules:          req.Rules,
		Budget:         req.Budget,
		BudgetUsed:     0,
		RewardRate:     req.RewardRate,
		TargetPlatform: domain.Platform(req.TargetPlatform),
		Category:       req.Category,
		Tags:           req.Tags,
		MediaURL:       req.MediaURL,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.challengeRepo.SaveChallenge(ctx, challenge); err != nil {
		logger.Error("Failed to create challenge", "creator_id", creatorID, "error", err)
		return nil, err
	}

	logger.Info("Challenge created", "challenge_id", challenge.ChallengeID, "creator_id", creatorID, "budget", challenge.Budget)
	return &challenge, nil
}

// GetChallengeByID returns the challenge with the given ID.
func (s *challengeService) GetChallengeByID(ctx context.Context, challengeID string) (*domain.Challenge, error) {
	return s.challengeRepo.FindChallengeByID(ctx, challengeID)
}

// ListChallenges returns challenges newest first.
func (s *challengeService) ListChallenges(ctx context.Context, limit int, nextToken *string) ([]domain.Challenge, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.challengeRepo.ListChallenges(ctx, limit, nextToken)
}
