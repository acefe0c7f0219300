package model

import "errors"

var (
	// Account related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Session token related errors
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")

	// Owned resource related errors
	ErrPetNotFound    = errors.New("pet not found")
	ErrRecordNotFound = errors.New("record not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
