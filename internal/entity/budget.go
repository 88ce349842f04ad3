package entity

import (
	"time"

	"FinanceTracker/internal/api/budget"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	CategoryID   string          `db:"category_id"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (b *Budget) OwnerID() string {
	return b.UserID
}

// Validate enforces the strictly positive monthly limit.
func (b *Budget) Validate() error {
	if !b.MonthlyLimit.IsPositive() {
		return budget.ErrInvalidMonthlyLimit
	}
	return nil
}
