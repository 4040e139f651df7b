// Package common defines shared constants and sentinel errors used across the
// store, the ledger and the services. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Service-level errors.
	ErrForbidden = errors.New("forbidden")

	// Identity claim errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Session lifecycle errors.
	ErrNotSignedIn = errors.New("not signed in")
)
