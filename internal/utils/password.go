package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is enforced here rather than in DTO validation so
// every caller gets the same rule.
const minPasswordLength = 8

// ErrPasswordTooShort is returned when a password fails the length rule.
var ErrPasswordTooShort = errors.New("password must be at least 8 characters")

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
