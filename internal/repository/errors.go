package repository

import "errors"

// Sentinel errors returned by the repositories. Services and controllers
// branch on these with errors.Is instead of matching message strings.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrURLNotFound    = errors.New("url not found")
	ErrDuplicateCode  = errors.New("short code already taken")
)
