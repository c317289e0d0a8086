package models

// Wallet represents a row in the wallets table.
// Balances are BIGINT minor currency units with CHECK (>= 0) constraints.
type Wallet struct {
	UserID           string `db:"user_id"`
	SpendableBalance int64  `db:"spendable_balance"`
	PayoutBalance    int64  `db:"payout_balance"`
	AuditFields
}
