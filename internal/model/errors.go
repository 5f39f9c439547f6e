package model

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned on an insert with an already taken email.
	ErrDuplicateEmail = errors.New("email already taken")
	// ErrInvalidCredentials is returned when a password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a bearer token does not verify.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing authorization token")
	// ErrValidation is returned on malformed or incomplete request input.
	ErrValidation = errors.New("validation failed")
)
