package entities

import "time"

// URL represents a shortened URL entity in the database
type URL struct {
	ID          string    `json:"id"` // UUID
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	UserID      string    `json:"userId"` // UUID of the owner
	ClickCount  int64     `json:"clicksCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
