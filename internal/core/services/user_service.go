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
	"github.com/clipquest/clipquest_backend/internal/utils"
)

// userService provides account management operations.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		userRepo: userRepo,
	}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a user together with an empty wallet in one
// database transaction.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	role := domain.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be CREATOR or CLIPPER", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	wallet := domain.Wallet{
		UserID: user.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUserWithWallet(ctx, user, wallet); err != nil {
		logger.Warn("Failed to register user", "error", err)
		return nil, err
	}

	logger.Info("User registered", "user_id", user.UserID, "role", string(role))
	return &user, nil
}

// Authenticate verifies the email and password pair. Both unknown
// email and wrong password surface as ErrForbidden so callers cannot
// probe which emails are registered.
func (s *userService) Authenticate(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrForbidden
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// GetUserByID returns the user with the given ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// UpdateProfile updates the user's display name and avatar. Omitted
// fields are left unchanged.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Warn("Failed to update user profile", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}
