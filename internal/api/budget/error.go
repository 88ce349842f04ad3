package budget

import "FinanceTracker/pkg/response"

var (
	ErrBudgetNotFound      = response.NewError(404, "budget not found")
	ErrBudgetAlreadyExists = response.NewError(409, "budget already exists for user and category")
	ErrInvalidMonthlyLimit = response.NewError(400, "monthly limit must be greater than zero")
	// Ownership mismatches are modeled as invalid arguments, not forbidden.
	ErrBudgetNotOwned = response.NewError(400, "budget does not belong to the specified user")
)
