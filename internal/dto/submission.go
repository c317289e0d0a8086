package dto

import (
	"time"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// CreateSubmissionRequest is the payload for submitting a clip.
type CreateSubmissionRequest struct {
	VideoURL string `json:"videoUrl" binding:"required,url"`
	Caption  string `json:"caption" binding:"omitempty,max=500"`
}

// RecordViewsRequest is the payload for advancing a submission's view
// counter. Views is the increment, not the new total.
type RecordViewsRequest struct {
	Views int64 `json:"views" binding:"required,gt=0"`
}

// SubmissionResponse is the API representation of a clip submission.
type SubmissionResponse struct {
	SubmissionID string    `json:"submissionId"`
	ChallengeID  string    `json:"challengeId"`
	UserID       string    `json:"userId"`
	VideoURL     string    `json:"videoUrl"`
	Caption      string    `json:"caption,omitempty"`
	Platform     string    `json:"platform"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	TrackedViews int64     `json:"trackedViews"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListSubmissionsResponse is a single page of submissions.
type ListSubmissionsResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// RecordViewsResponse reports the reward applied for a view update.
type RecordViewsResponse struct {
	SubmissionID  string `json:"submissionId"`
	AppliedAmount int64  `json:"appliedAmount"`
	BudgetUsed    int64  `json:"budgetUsed"`
	PayoutBalance int64  `json:"payoutBalance"`
}

// ToSubmissionResponse maps a domain submission to its API representation.
func ToSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: s.SubmissionID,
		ChallengeID:  s.ChallengeID,
		UserID:       s.UserID,
		VideoURL:     s.VideoURL,
		Caption:      s.Caption,
		Platform:     string(s.Platform),
		ThumbnailURL: s.ThumbnailURL,
		TrackedViews: s.TrackedViews,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSubmissionResponses maps a slice of domain submissions.
func ToSubmissionResponses(ss []domain.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(ss))
	for i := range ss {
		out = append(out, ToSubmissionResponse(&ss[i]))
	}
	return out
}
