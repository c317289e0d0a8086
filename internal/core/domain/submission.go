package domain

// Submission is a clipper's video entered into a challenge.
// TrackedViews is the cumulative view count already converted into rewards.
type Submission struct {
	SubmissionID string   `json:"submissionID"` // Primary Key (UUID)
	ChallengeID  string   `json:"challengeID"`  // FK -> challenges.challenge_id
	UserID       string   `json:"userID"`       // FK -> users.user_id (the clipper)
	VideoURL     string   `json:"videoURL"`
	Caption      string   `json:"caption"`
	Platform     Platform `json:"platform"` // Detected from VideoURL, never ANY
	ThumbnailURL string   `json:"thumbnailURL"`
	TrackedViews int64    `json:"trackedViews"`
	AuditFields
}
