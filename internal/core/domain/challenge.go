package domain

import "time"

// Platform identifies which social network a challenge targets or a video lives on.
type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformAny       Platform = "ANY" // Target only; submissions always carry a concrete platform.
)

// ChallengeStatus is derived from budget consumption and the end date, never stored.
type ChallengeStatus string

const (
	ChallengeActive ChallengeStatus = "ACTIVE"
	ChallengeEnded  ChallengeStatus = "ENDED"
)

// Challenge is a paid brief funded by a creator. Budget is fixed at creation;
// BudgetUsed only ever grows and never exceeds Budget.
type Challenge struct {
	ChallengeID    string    `json:"challengeID"` // Primary Key (UUID)
	CreatorID      string    `json:"creatorID"`   // FK -> users.user_id
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Rules          string    `json:"rules"`
	Budget         int64     `json:"budget"`     // Positive, minor currency units, immutable
	BudgetUsed     int64     `json:"budgetUsed"` // 0 <= BudgetUsed <= Budget, monotonic
	RewardRate     int64     `json:"rewardRate"` // Reward per 1,000 tracked views
	TargetPlatform Platform  `json:"targetPlatform"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	MediaURL       string    `json:"mediaURL"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	AuditFields
}

// RemainingBudget returns the portion of the budget not yet paid out.
func (c Challenge) RemainingBudget() int64 {
	return c.Budget - c.BudgetUsed
}

// Status derives the challenge state at the given instant.
func (c Challenge) Status(now time.Time) ChallengeStatus {
	if c.BudgetUsed >= c.Budget || now.After(c.EndDate) {
		return ChallengeEnded
	}
	return ChallengeActive
}
