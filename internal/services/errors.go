package services

import "errors"

// Service-level failures the HTTP boundary maps to status codes. Anything
// else bubbling out of a service is an infrastructure error (500).
var (
	// ErrEmailTaken: registration with an already-registered email (409).
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials: unknown email or wrong password (401).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken: bad signature, expired, or unresolvable subject (401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrLinkNotFound: unknown code/id, or a mutation by a non-owner. The
	// two cases are deliberately indistinguishable so non-owners cannot
	// probe for existence (404).
	ErrLinkNotFound = errors.New("link not found")

	// ErrCodeExhausted: short-code generation kept colliding (409).
	ErrCodeExhausted = errors.New("could not allocate a unique short code")
)
