package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/core/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
)

// MockUserSvc is a mock type for the UserSvcFacade interface
type MockUserSvc struct {
	mock.Mock
}

func (m *MockUserSvc) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserSvc) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type ChallengeServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockChallengeRepository
	mockUserSvc *MockUserSvc
	service     portssvc.ChallengeSvcFacade
}

func (suite *ChallengeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChallengeRepository)
	suite.mockUserSvc = new(MockUserSvc)
	suite.service = services.NewChallengeService(suite.mockRepo, suite.mockUserSvc)
}

func (suite *ChallengeServiceTestSuite) validRequest() dto.CreateChallengeRequest {
	return dto.CreateChallengeRequest{
		Title:          "Summer Fashion Challenge",
		Description:    "Show off summer fits",
		Budget:         500_000,
		RewardRate:     500,
		TargetPlatform: "INSTAGRAM",
		StartDate:      time.Now(),
		EndDate:        time.Now().Add(30 * 24 * time.Hour),
	}
}

// --- Test Cases ---

func (suite *ChallengeServiceTestSuite) TestCreateChallenge_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	creator := &domain.User{UserID: creatorID, Role: domain.RoleCreator}

	suite.mockUserSvc.On("GetUserByID", ctx, creatorID).Return(creator, nil).Once()
	suite.mockRepo.On("SaveChallenge", ctx, mock.MatchedBy(func(c domain.Challenge) bool {
		return c.CreatorID == creatorID &&
			c.Budget == 500_000 &&
			c.BudgetUsed == 0 &&
			c.TargetPlatform == domain.PlatformInstagram
	})).Return(nil).Once()

	challenge, err := suite.service.CreateChallenge(ctx, creatorID, suite.validRequest())

	suite.Require().NoError(err)
	suite.NotEmpty(challenge.ChallengeID)
	suite.Equal(int64(0), challenge.BudgetUsed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChallengeServiceTestSuite) TestCreateChallenge_ClipperForbidden() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()

	_, err := suite.service.CreateChallenge(ctx, clipperID, suite.validRequest())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveChallenge", mock.Anything, mock.Anything)
}

func (suite *ChallengeServiceTestSuite) TestCreateChallenge_EndBeforeStart() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	creator := &domain.User{UserID: creatorID, Role: domain.RoleCreator}

	req := suite.validRequest()
	req.EndDate = req.StartDate.Add(-time.Hour)

	suite.mockUserSvc.On("GetUserByID", ctx, creatorID).Return(creator, nil).Once()

	_, err := suite.service.CreateChallenge(ctx, creatorID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveChallenge", mock.Anything, mock.Anything)
}

func (suite *ChallengeServiceTestSuite) TestListChallenges_PassesThroughToken() {
	ctx := context.Background()
	token := "b2theQ=="
	next := "bmV4dA=="
	challenges := []domain.Challenge{{ChallengeID: uuid.NewString()}}

	suite.mockRepo.On("ListChallenges", ctx, 20, &token).Return(challenges, &next, nil).Once()

	got, gotNext, err := suite.service.ListChallenges(ctx, 0, &token)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(&next, gotNext)
}

func TestChallengeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeServiceTestSuite))
}
