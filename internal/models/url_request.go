package models

// CreateURLRequest represents the request body for creating a short URL.
// originalUrl is validated in the service (absolute http/https), the
// binding tag only guarantees presence.
type CreateURLRequest struct {
	OriginalURL string `json:"originalUrl" binding:"required"`
	CustomCode  string `json:"customCode,omitempty"`
}
