package domain

// Wallet holds a user's two balances, in integer minor currency units.
//
// SpendableBalance funds new challenges and is credited by top-ups.
// PayoutBalance accumulates challenge rewards and is debited by payout requests.
// Both are invariantly non-negative; only the ledger repository mutates them,
// and only inside a database transaction.
type Wallet struct {
	UserID           string `json:"userID"` // Primary Key, FK -> users.user_id
	SpendableBalance int64  `json:"spendableBalance"`
	PayoutBalance    int64  `json:"payoutBalance"`
	AuditFields
}
