package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clipquest/clipquest_backend/internal/apperrors"
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/core/services"
	"github.com/clipquest/clipquest_backend/internal/dto"
	"github.com/clipquest/clipquest_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error {
	args := m.Called(ctx, user, wallet)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Register ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "correct-horse-battery",
		Role:     "CLIPPER",
	}

	suite.mockRepo.On("SaveUserWithWallet", ctx,
		mock.MatchedBy(func(user domain.User) bool {
			return user.Email == req.Email &&
				user.Role == domain.RoleClipper &&
				user.PasswordHash != "" &&
				user.PasswordHash != req.Password
		}),
		mock.MatchedBy(func(wallet domain.Wallet) bool {
			return wallet.SpendableBalance == 0 && wallet.PayoutBalance == 0
		}),
	).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleClipper, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_WalletSharesUserID() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "another-strong-one",
		Role:     "CREATOR",
	}

	var savedUser domain.User
	var savedWallet domain.Wallet
	suite.mockRepo.On("SaveUserWithWallet", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
			savedWallet = args.Get(2).(domain.Wallet)
		}).Return(nil).Once()

	_, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(savedUser.UserID, savedWallet.UserID)
}

func (suite *UserServiceTestSuite) TestRegister_InvalidRole() {
	ctx := context.Background()

	_, err := suite.service.Register(ctx, dto.RegisterUserRequest{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "irrelevant-password",
		Role:     "ADMIN",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUserWithWallet", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUserWithWallet", ctx, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(ctx, dto.RegisterUserRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "correct-horse-battery",
		Role:     "CLIPPER",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- Authenticate ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jamie@example.com",
		PasswordHash: hash,
		Role:         domain.RoleClipper,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jamie@example.com",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, err = suite.service.Authenticate(ctx, user.Email, "a-wrong-guess")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "ghost@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UpdateProfile ---

func (suite *UserServiceTestSuite) TestUpdateProfile_PartialUpdate() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.User{
		UserID:    userID,
		Name:      "Old Name",
		AvatarURL: "https://example.com/old.png",
		Role:      domain.RoleCreator,
	}
	newName := "New Name"

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == newName && user.AvatarURL == "https://example.com/old.png"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(ctx, userID, dto.UpdateUserRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateProfile_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateProfile(ctx, userID, dto.UpdateUserRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
