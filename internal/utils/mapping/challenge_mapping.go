package mapping

import (
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	"github.com/clipquest/clipquest_backend/internal/models"
)

// ToModelChallenge converts a domain challenge to its storage form.
func ToModelChallenge(d domain.Challenge) models.Challenge {
	return models.Challenge{
		ChallengeID:    d.ChallengeID,
		CreatorID:      d.CreatorID,
		Title:          d.Title,
		Description:    d.Description,
		Rules:          d.Rules,
		Budget:         d.Budget,
		BudgetUsed:     d.BudgetUsed,
		RewardRate:     d.RewardRate,
		TargetPlatform: models.Platform(d.TargetPlatform),
		Category:       d.Category,
		Tags:           d.Tags,
		MediaURL:       d.MediaURL,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChallenge converts a storage challenge row to its domain form.
func ToDomainChallenge(m models.Challenge) domain.Challenge {
	return domain.Challenge{
		ChallengeID:    m.ChallengeID,
		CreatorID:      m.CreatorID,
		Title:          m.Title,
		Description:    m.Description,
		Rules:          m.Rules,
		Budget:         m.Budget,
		BudgetUsed:     m.BudgetUsed,
		RewardRate:     m.RewardRate,
		TargetPlatform: domain.Platform(m.TargetPlatform),
		Category:       m.Category,
		Tags:           m.Tags,
		MediaURL:       m.MediaURL,
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSubmission converts a domain submission to its storage form.
func ToModelSubmission(d domain.Submission) models.Submission {
	return models.Submission{
		SubmissionID: d.SubmissionID,
		ChallengeID:  d.ChallengeID,
		UserID:       d.UserID,
		VideoURL:     d.VideoURL,
		Caption:      d.Caption,
		Platform:     models.Platform(d.Platform),
		ThumbnailURL: d.ThumbnailURL,
		TrackedViews: d.TrackedViews,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubmission converts a storage submission row to its domain form.
func ToDomainSubmission(m models.Submission) domain.Submission {
	return domain.Submission{
		SubmissionID: m.SubmissionID,
		ChallengeID:  m.ChallengeID,
		UserID:       m.UserID,
		VideoURL:     m.VideoURL,
		Caption:      m.Caption,
		Platform:     domain.Platform(m.Platform),
		ThumbnailURL: m.ThumbnailURL,
		TrackedViews: m.TrackedViews,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
