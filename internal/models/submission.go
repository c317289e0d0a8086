package models

// Submission represents a row in the submissions table.
type Submission struct {
	SubmissionID string   `db:"submission_id"`
	ChallengeID  string   `db:"challenge_id"`
	UserID       string   `db:"user_id"`
	VideoURL     string   `db:"video_url"`
	Caption      string   `db:"caption"`
	Platform     Platform `db:"platform"`
	ThumbnailURL string   `db:"thumbnail_url"`
	TrackedViews int64    `db:"tracked_views"`
	AuditFields
}
