package dto

import (
	"time"

	"github.com/clipquest/clipquest_backend/internal/core/domain"
)

// TopUpRequest is the payload for crediting the spendable balance.
// Amount is in minor currency units.
type TopUpRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Method string `json:"method" binding:"required,min=1,max=50"`
}

// PayoutRequest is the payload for withdrawing from the payout balance.
// Amount is in minor currency units.
type PayoutRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	BankAccount string `json:"bankAccount" binding:"required,min=4,max=34"`
}

// SettlePayoutRequest is the payload for resolving a pending payout.
type SettlePayoutRequest struct {
	Status string `json:"status" binding:"required,oneof=COMPLETED FAILED"`
}

// WalletResponse is the API representation of a wallet.
type WalletResponse struct {
	UserID           string    `json:"userId"`
	SpendableBalance int64     `json:"spendableBalance"`
	PayoutBalance    int64     `json:"payoutBalance"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// TransactionResponse is the API representation of a ledger record.
type TransactionResponse struct {
	TransactionID string    `json:"transactionId"`
	UserID        string    `json:"userId"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionMutationResponse pairs a recorded transaction with the
// wallet state after the mutation.
type TransactionMutationResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Wallet      WalletResponse      `json:"wallet"`
}

// ListTransactionsResponse is a single page of transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToWalletResponse maps a domain wallet to its API representation.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		UserID:           w.UserID,
		SpendableBalance: w.SpendableBalance,
		PayoutBalance:    w.PayoutBalance,
		LastUpdatedAt:    w.LastUpdatedAt,
	}
}

// ToTransactionResponse maps a domain transaction to its API representation.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		UserID:        txn.UserID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses maps a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return out
}
