package mapping

import (
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	"github.com/clipquest/clipquest_backend/internal/models"
)

// ToModelUser converts a domain user to its storage form.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         models.UserRole(d.Role),
		AvatarURL:    d.AvatarURL,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a storage user row to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		AvatarURL:    m.AvatarURL,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
