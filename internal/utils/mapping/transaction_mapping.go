package mapping

import (
	"github.com/clipquest/clipquest_backend/internal/core/domain"
	"github.com/clipquest/clipquest_backend/internal/models"
)

// ToModelTransaction converts a domain transaction record to its storage form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		Status:        models.TransactionStatus(d.Status),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a storage transaction row to its domain form.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of storage rows to domain records.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
