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
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/core/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
)

// MockSubmissionRepository is a mock type for the SubmissionRepositoryFacade interface
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissionsByChallenge(ctx context.Context, challengeID string, limit int, nextToken *string) ([]domain.Submission, *string, error) {
	args := m.Called(ctx, challengeID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Submission), token, args.Error(2)
}

func (m *MockSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

// MockLedgerSvc is a mock type for the LedgerSvcFacade interface
type MockLedgerSvc struct {
	mock.Mock
}

func (m *MockLedgerSvc) GetBalance(ctx context.Context, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockLedgerSvc) TopUp(ctx context.Context, userID string, req dto.TopUpRequest) (*domain.Transaction, *domain.Wallet, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Wallet), args.Error(2)
}

func (m *MockLedgerSvc) RequestPayout(ctx context.Context, userID string, req dto.PayoutRequest) (*domain.Transaction, *domain.Wallet, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Wallet), args.Error(2)
}

func (m *MockLedgerSvc) SettlePayout(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerSvc) DebitChallengeBudget(ctx context.Context, params portssvc.DebitChallengeBudgetParams) (*portsrepo.ChallengePaymentResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.ChallengePaymentResult), args.Error(1)
}

func (m *MockLedgerSvc) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockLedgerSvc) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockSubmissionRepo *MockSubmissionRepository
	mockChallengeRepo  *MockChallengeRepository
	mockUserSvc        *MockUserSvc
	mockLedgerSvc      *MockLedgerSvc
	service            portssvc.SubmissionSvcFacade
}

func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.mockSubmissionRepo = new(MockSubmissionRepository)
	suite.mockChallengeRepo = new(MockChallengeRepository)
	suite.mockUserSvc = new(MockUserSvc)
	suite.mockLedgerSvc = new(MockLedgerSvc)
	suite.service = services.NewSubmissionService(
		suite.mockSubmissionRepo,
		suite.mockChallengeRepo,
		suite.mockUserSvc,
		suite.mockLedgerSvc,
	)
}

func (suite *SubmissionServiceTestSuite) activeChallenge(target domain.Platform) *domain.Challenge {
	return &domain.Challenge{
		ChallengeID:    uuid.NewString(),
		CreatorID:      uuid.NewString(),
		Title:          "Dance Trend Challenge",
		Budget:         500_000,
		BudgetUsed:     0,
		RewardRate:     500,
		TargetPlatform: target,
		StartDate:      time.Now().Add(-24 * time.Hour),
		EndDate:        time.Now().Add(24 * time.Hour),
	}
}

// --- SubmitToChallenge ---

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_DetectsInstagram() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}
	challenge := suite.activeChallenge(domain.PlatformAny)

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()
	suite.mockSubmissionRepo.On("SaveSubmission", ctx, mock.MatchedBy(func(s domain.Submission) bool {
		return s.Platform == domain.PlatformInstagram &&
			s.TrackedViews == 0 &&
			s.ThumbnailURL != ""
	})).Return(nil).Once()

	submission, err := suite.service.SubmitToChallenge(ctx, clipperID, challenge.ChallengeID, dto.CreateSubmissionRequest{
		VideoURL: "https://www.instagram.com/reel/abc123/",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.PlatformInstagram, submission.Platform)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_CreatorForbidden() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	creator := &domain.User{UserID: creatorID, Role: domain.RoleCreator}

	suite.mockUserSvc.On("GetUserByID", ctx, creatorID).Return(creator, nil).Once()

	_, err := suite.service.SubmitToChallenge(ctx, creatorID, uuid.NewString(), dto.CreateSubmissionRequest{
		VideoURL: "https://www.tiktok.com/@someone/video/123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_UnknownHostRejected() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}
	challenge := suite.activeChallenge(domain.PlatformAny)

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()

	_, err := suite.service.SubmitToChallenge(ctx, clipperID, challenge.ChallengeID, dto.CreateSubmissionRequest{
		VideoURL: "https://www.youtube.com/watch?v=abc",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_PlatformMismatch() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}
	challenge := suite.activeChallenge(domain.PlatformTikTok)

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()

	_, err := suite.service.SubmitToChallenge(ctx, clipperID, challenge.ChallengeID, dto.CreateSubmissionRequest{
		VideoURL: "https://www.instagram.com/reel/abc123/",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_EndedChallengeRejected() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}
	challenge := suite.activeChallenge(domain.PlatformAny)
	challenge.EndDate = time.Now().Add(-time.Hour)

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()

	_, err := suite.service.SubmitToChallenge(ctx, clipperID, challenge.ChallengeID, dto.CreateSubmissionRequest{
		VideoURL: "https://www.tiktok.com/@someone/video/123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *SubmissionServiceTestSuite) TestSubmitToChallenge_ExhaustedBudgetRejected() {
	ctx := context.Background()
	clipperID := uuid.NewString()
	clipper := &domain.User{UserID: clipperID, Role: domain.RoleClipper}
	challenge := suite.activeChallenge(domain.PlatformAny)
	challenge.BudgetUsed = challenge.Budget

	suite.mockUserSvc.On("GetUserByID", ctx, clipperID).Return(clipper, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()

	_, err := suite.service.SubmitToChallenge(ctx, clipperID, challenge.ChallengeID, dto.CreateSubmissionRequest{
		VideoURL: "https://www.tiktok.com/@someone/video/123",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrBudgetExhausted)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

// --- RecordViews ---

func (suite *SubmissionServiceTestSuite) TestRecordViews_ConvertsViewsToReward() {
	ctx := context.Background()
	challenge := suite.activeChallenge(domain.PlatformAny)
	submission := &domain.Submission{
		SubmissionID: uuid.NewString(),
		ChallengeID:  challenge.ChallengeID,
		UserID:       uuid.NewString(),
	}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submission.SubmissionID).Return(submission, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()
	// 10,000 views at 500 per 1,000 views earns 5,000
	suite.mockLedgerSvc.On("DebitChallengeBudget", ctx, portssvc.DebitChallengeBudgetParams{
		ChallengeID:     challenge.ChallengeID,
		RecipientUserID: submission.UserID,
		Amount:          5_000,
		SubmissionID:    submission.SubmissionID,
		Views:           10_000,
	}).Return(&portsrepo.ChallengePaymentResult{AppliedAmount: 5_000, BudgetUsed: 5_000, PayoutBalance: 5_000}, nil).Once()

	result, err := suite.service.RecordViews(ctx, submission.SubmissionID, 10_000)

	suite.Require().NoError(err)
	suite.Equal(int64(5_000), result.AppliedAmount)
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestRecordViews_SubUnitRewardStillRecordsViews() {
	ctx := context.Background()
	challenge := suite.activeChallenge(domain.PlatformAny)
	submission := &domain.Submission{
		SubmissionID: uuid.NewString(),
		ChallengeID:  challenge.ChallengeID,
		UserID:       uuid.NewString(),
	}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submission.SubmissionID).Return(submission, nil).Once()
	suite.mockChallengeRepo.On("FindChallengeByID", ctx, challenge.ChallengeID).Return(challenge, nil).Once()
	// A single view at 500 per 1,000 rounds down to zero
	suite.mockLedgerSvc.On("DebitChallengeBudget", ctx, mock.MatchedBy(func(params portssvc.DebitChallengeBudgetParams) bool {
		return params.Amount == 0 && params.Views == 1
	})).Return(&portsrepo.ChallengePaymentResult{AppliedAmount: 0}, nil).Once()

	result, err := suite.service.RecordViews(ctx, submission.SubmissionID, 1)

	suite.Require().NoError(err)
	suite.Equal(int64(0), result.AppliedAmount)
}

func (suite *SubmissionServiceTestSuite) TestRecordViews_NonPositiveRejected() {
	ctx := context.Background()

	_, err := suite.service.RecordViews(ctx, uuid.NewString(), 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "FindSubmissionByID", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestRecordViews_SubmissionNotFound() {
	ctx := context.Background()
	submissionID := uuid.NewString()

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, submissionID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordViews(ctx, submissionID, 100)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerSvc.AssertNotCalled(suite.T(), "DebitChallengeBudget", mock.Anything, mock.Anything)
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
