package entity

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")

	// ErrEmailAlreadyExists is mapped from the storage unique index on
	// clients.email. It is the backstop beneath application validation.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
