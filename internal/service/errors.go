package service

import "errors"

// Sentinel errors mapped to HTTP status codes at the handler boundary.
var (
	ErrFoodNotFound     = errors.New("Food item not found")
	ErrCategoryNotFound = errors.New("Category not found")
	ErrCategoryName     = errors.New("A category with that name already exists")
	ErrEmailTaken       = errors.New("Email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses never reveal whether an email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
