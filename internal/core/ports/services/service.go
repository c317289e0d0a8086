package services

// ServiceContainer holds all service facades needed by the handlers.
// It is assembled once at startup and injected into route registration.
type ServiceContainer struct {
	User       UserSvcFacade
	Token      TokenSvcFacade
	Ledger     LedgerSvcFacade
	Challenge  ChallengeSvcFacade
	Submission SubmissionSvcFacade
}
