package budget

import "github.com/shopspring/decimal"

type CreateBudgetRequest struct {
	UserID       string           `json:"userId" validate:"required"`
	CategoryID   string           `json:"categoryId" validate:"required"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit" validate:"required"`
}

type UpdateBudgetRequest struct {
	UserID       string           `json:"userId" validate:"required"`
	CategoryID   string           `json:"categoryId" validate:"required"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit" validate:"required"`
}

// BudgetResponse is the projection served to clients. CurrentSpend is a
// literal zero; it is not computed server-side.
type BudgetResponse struct {
	ID           string          `json:"id"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	CurrentSpend decimal.Decimal `json:"currentSpend"`
}
