package pgsql

import (
	portsrepo "github.com/clipquest/clipquest_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	challengeRepo := newPgxChallengeRepository(dbPool)
	submissionRepo := newPgxSubmissionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		LedgerRepo:     ledgerRepo,
		ChallengeRepo:  challengeRepo,
		SubmissionRepo: submissionRepo,
	}
}
