package services

import "errors"

var (
	// ErrValidation wraps any request-payload validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNotOwner is returned when a mutation targets a resource the acting
	// user does not own.
	ErrNotOwner = errors.New("not the resource owner")

	// ErrUnknownEmail is returned by Login for an unregistered email.
	ErrUnknownEmail = errors.New("email not registered")

	// ErrWrongPassword is returned by Login when the password does not match.
	ErrWrongPassword = errors.New("password does not match")
)
