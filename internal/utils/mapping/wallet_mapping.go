package mapping

import (
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	"github.com/clipquest/clipquest_backend/internal/models"
)

// ToModelWallet converts a domain wallet to its storage form.
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		UserID:           d.UserID,
		SpendableBalance: d.SpendableBalance,
		PayoutBalance:    d.PayoutBalance,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a storage wallet to its domain form.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		UserID:           m.UserID,
		SpendableBalance: m.SpendableBalance,
		PayoutBalance:    m.PayoutBalance,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
