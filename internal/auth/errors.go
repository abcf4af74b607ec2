package auth

import "errors"

var (
	// ErrEmptySecret indicates a missing signing secret. Fatal at startup,
	// never returned per-request.
	ErrEmptySecret = errors.New("signing secret must not be empty")

	// ErrTokenMalformed indicates a token that does not have three valid
	// segments or whose payload cannot be decoded.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrInvalidSignature indicates a MAC mismatch.
	ErrInvalidSignature = errors.New("token signature invalid")

	// ErrTokenExpired indicates a structurally valid, correctly signed token
	// whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)
