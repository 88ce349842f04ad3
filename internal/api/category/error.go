package category

import "FinanceTracker/pkg/response"

var (
	ErrCategoryNotFound   = response.NewError(404, "category not found")
	ErrCategoryNameExists = response.NewError(409, "category name already exists")
	ErrInvalidType        = response.NewError(400, "invalid category type, must be INCOME or EXPENSE")
)
