package services

import (
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	portssvc "github.com/clipquest/clipquest_backend/internal/core/ports/services"
	"github.com/clipquest/clipquest_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Ledger = NewLedgerService(repos.LedgerRepo, repos.ChallengeRepo)
	container.Challenge = NewChallengeService(repos.ChallengeRepo, container.User)
	container.Submission = NewSubmissionService(repos.SubmissionRepo, repos.ChallengeRepo, container.User, container.Ledger)

	return container
}
