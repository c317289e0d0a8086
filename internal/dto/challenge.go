package dto

import (
	"time"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// CreateChallengeRequest is the payload for creating a challenge.
// Budget is in minor currency units; RewardRate is minor units per
// 1,000 tracked views.
type CreateChallengeRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=150"`
	Description    string    `json:"description" binding:"required,min=1"`
	Rules          string    `json:"rules" binding:"omitempty"`
	Budget         int64     `json:"budget" binding:"required,gt=0"`
	RewardRate     int64     `json:"rewardRate" binding:"required,gt=0"`
	TargetPlatform string    `json:"targetPlatform" binding:"required,oneof=INSTAGRAM TIKTOK ANY"`
	Category       string    `json:"category" binding:"omitempty,max=50"`
	Tags           []string  `json:"tags" binding:"omitempty,max=10,dive,min=1,max=30"`
	MediaURL       string    `json:"mediaUrl" binding:"omitempty,url"`
	StartDate      time.Time `json:"startDate" binding:"required"`
	EndDate        time.Time `json:"endDate" binding:"required"`
}

// ChallengeResponse is the API representation of a challenge.
type ChallengeResponse struct {
	ChallengeID     string    `json:"challengeId"`
	CreatorID       string    `json:"creatorId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Rules           string    `json:"rules,omitempty"`
	Budget          int64     `json:"budget"`
	BudgetUsed      int64     `json:"budgetUsed"`
	RemainingBudget int64     `json:"remainingBudget"`
	RewardRate      int64     `json:"rewardRate"`
	TargetPlatform  string    `json:"targetPlatform"`
	Category        string    `json:"category,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	MediaURL        string    `json:"mediaUrl,omitempty"`
	Status          string    `json:"status"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListChallengesResponse is a single page of challenges.
type ListChallengesResponse struct {
	Challenges []ChallengeResponse `json:"challenges"`
	NextToken  *string             `json:"nextToken,omitempty"`
}

// ToChallengeResponse maps a domain challenge to its API representation.
func ToChallengeResponse(c *domain.Challenge, now time.Time) ChallengeResponse {
	return ChallengeResponse{
		ChallengeID:     c.ChallengeID,
		CreatorID:       c.CreatorID,
		Title:           c.Title,
		Description:     c.Description,
		Rules:           c.Rules,
		Budget:          c.Budget,
		BudgetUsed:      c.BudgetUsed,
		RemainingBudget: c.RemainingBudget(),
		RewardRate:      c.RewardRate,
		TargetPlatform:  string(c.TargetPlatform),
		Category:        c.Category,
		Tags:            c.Tags,
		MediaURL:        c.MediaURL,
		Status:          string(c.Status(now)),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CreatedAt:       c.CreatedAt,
	}
}

// ToChallengeResponses maps a slice of domain challenges.
func ToChallengeResponses(cs []domain.Challenge, now time.Time) []ChallengeResponse {
	out := make([]ChallengeResponse, 0, len(cs))
	for i := range cs {
		out = append(out, ToChallengeResponse(&cs[i], now))
	}
	return out
}
