package transaction

import "FinanceTracker/pkg/response"

var (
	ErrTransactionNotFound = response.NewError(404, "transaction not found")
	ErrNegativeAmount      = response.NewError(400, "amount cannot be negative")
	ErrMissingDate         = response.NewError(400, "date is required")
	// Ownership mismatches are modeled as invalid arguments, not forbidden.
	ErrTransactionNotOwned = response.NewError(400, "transaction does not belong to the specified user")
)
