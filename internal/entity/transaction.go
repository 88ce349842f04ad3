package entity

import (
	"time"

	"FinanceTracker/internal/api/transaction"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Date       time.Time       `db:"date"`
	Note       string          `db:"note"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (t *Transaction) OwnerID() string {
	return t.UserID
}

// Validate enforces the amount invariant: negative amounts are rejected,
// zero is allowed.
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return transaction.ErrNegativeAmount
	}
	if t.Date.IsZero() {
		return transaction.ErrMissingDate
	}
	return nil
}
