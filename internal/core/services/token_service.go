package services

import (
	"context"
	"time"

	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/platform/config"
	"github.com/clipquest/clipquest_backend/internal/utils"
)

// tokenService issues JWT access tokens.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the portssvc.TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken returns a signed token and its expiry time.
func (s *tokenService) GenerateAccessToken(_ context.Context, userID string) (string, time.Time, error) {
	return utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
