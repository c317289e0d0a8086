package models

import "time"

// Platform mirrors domain.Platform for storage.
type Platform string

const (
	PlatformInstagram Platform = "INSTAGRAM"
	PlatformTikTok    Platform = "TIKTOK"
	PlatformAny       Platform = "ANY"
)

// Challenge represents a row in the challenges table.
type Challenge struct {
	ChallengeID    string    `db:"challenge_id"`
	CreatorID      string    `db:"creator_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Rules          string    `db:"rules"`
	Budget         int64     `db:"budget"`
	BudgetUsed     int64     `db:"budget_used"`
	RewardRate     int64     `db:"reward_rate"`
	TargetPlatform Platform  `db:"target_platform"`
	Category       string    `db:"category"`
	Tags           []string  `db:"tags"` // TEXT[] column
	MediaURL       string    `db:"media_url"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	AuditFields
}
