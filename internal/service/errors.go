package service

import "errors"

// Sentinel errors mapped to HTTP status codes by the handlers
var (
	// ErrNotFound means the requested resource does not exist (404)
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden means the acting user does not own the resource (403)
	ErrForbidden = errors.New("not the resource owner")

	// ErrUsernameTaken means the username is already registered (400)
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so login failures do not leak account existence (401)
	ErrInvalidCredentials = errors.New("invalid credentials")
)
