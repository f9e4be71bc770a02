package models

import "time"

// CreateURLResponse represents the response after creating a short URL
type CreateURLResponse struct {
	ID          string `json:"id"`
	ShortCode   string `json:"shortCode"`
	ShortURL    string `json:"shortUrl"` // base URL + short code
	OriginalURL string `json:"originalUrl"`
}

// URLResponse is one link in the caller's link list
type URLResponse struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	ClickCount  int64     `json:"clicksCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// URLInfoResponse is the public lookup of a short code (no click recorded)
type URLInfoResponse struct {
	OriginalURL string `json:"originalUrl"`
	ShortCode   string `json:"shortCode"`
}
