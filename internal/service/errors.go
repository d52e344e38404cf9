package service

import "errors"

// Error taxonomy. Every service failure maps to exactly one of these; the
// HTTP layer owns the translation to status codes and user-safe messages.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("email already registered")
)
