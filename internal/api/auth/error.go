package auth

import "FinanceTracker/pkg/response"

var (
	ErrUsernameAlreadyExists = response.NewError(409, "username already exists")
	ErrUserNotFound          = response.NewError(404, "user not found")
	ErrInvalidCredentials    = response.NewError(401, "invalid credentials")
)
