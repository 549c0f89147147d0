package usecase

import "errors"

// Sentinel errors returned by the use cases. Handlers translate these into
// HTTP statuses; 401, 403, and 404 are deliberately distinct and must stay so.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidRole        = errors.New("invalid role")
)
