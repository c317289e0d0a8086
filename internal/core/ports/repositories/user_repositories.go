package repositories

import (
	"context"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUserWithWallet persists a new user together with their zeroed wallet
	// in one database transaction.
	SaveUserWithWallet(ctx context.Context, user domain.User, wallet domain.Wallet) error

	// UpdateUser updates the mutable profile fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
