package service

import "errors"

// Errors the controllers translate into client-facing status codes
var (
	ErrInvalidURL         = errors.New("provide a valid URL including http(s)://")
	ErrInvalidCustomCode  = errors.New("invalid custom code format")
	ErrCodeConflict       = errors.New("could not allocate a unique short code")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
