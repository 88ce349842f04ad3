package auth

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	DisplayName       *string          `json:"displayName"`
	PreferredCurrency *string          `json:"preferredCurrency"`
	MonthlyIncomeGoal *decimal.Decimal `json:"monthlyIncomeGoal"`
}

// UserSummaryResponse is the shape returned by register and login.
// MonthlyIncomeGoal defaults to zero when the user has not set a goal.
type UserSummaryResponse struct {
	UserID            string          `json:"userId"`
	Username          string          `json:"username"`
	DisplayName       string          `json:"displayName"`
	PreferredCurrency string          `json:"preferredCurrency"`
	MonthlyIncomeGoal decimal.Decimal `json:"monthlyIncomeGoal"`
}

// ProfileResponse is the shape returned by the profile endpoints; the goal is
// null when unset.
type ProfileResponse struct {
	ID                string               `json:"id"`
	Username          string               `json:"username"`
	DisplayName       string               `json:"displayName"`
	PreferredCurrency string               `json:"preferredCurrency"`
	MonthlyIncomeGoal *decimal.NullDecimal `json:"monthlyIncomeGoal"`
}
