package user

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidInput = errors.New("invalid user input")

	// -- Conflicts --
	ErrEmailExists     = errors.New("email already registered")
	ErrConsumerIDTaken = errors.New("consumer id already in use")

	// -- Auth --
	ErrInvalidCredentials = errors.New("invalid email or password")

	// -- Resource State --
	ErrUserNotFound = errors.New("user not found")
)
