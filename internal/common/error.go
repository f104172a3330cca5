// Package common defines sentinel errors and small helpers shared by the
// client packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrorInvalidDirectory = errors.New("invalid user directory")

	// Navigation errors.
	ErrPageNotFound      = errors.New("page not found")
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrUnknownThemeMode  = errors.New("unknown theme mode")
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrInvalidCredential = errors.New("invalid username or password")
)
