package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

type User struct {
	ID                string              `db:"id"`
	Username          string              `db:"username"`
	Password          string              `db:"password"`
	DisplayName       string              `db:"display_name"`
	PreferredCurrency string              `db:"preferred_currency"`
	MonthlyIncomeGoal decimal.NullDecimal `db:"monthly_income_goal"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
}
