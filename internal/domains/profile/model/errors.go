package model

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrEmailTaken      = errors.New("email already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
	ErrNotPermitted       = errors.New("not permitted")
)
