package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidCredentials is returned when the username/password pair
	// does not match any account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a session token is malformed or
	// its signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a session token has expired.
	ErrExpiredToken = errors.New("token expired")
)
