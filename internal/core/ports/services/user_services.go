package services

import (
	"context"
	"time"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
	"github.com/clipquest/clipquest_backend/internal/dto"
)

// UserSvcFacade is the interface for account management operations.
type UserSvcFacade interface {
	// Register creates a user together with an empty wallet.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate verifies the email and password pair.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID returns the user with the given ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile updates the user's display name and avatar.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed token and its expiry time.
	GenerateAccessToken(ctx context.Context, userID string) (string, time.Time, error)
}
