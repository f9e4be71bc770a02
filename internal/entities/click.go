package entities

import "time"

// Click is one recorded visit to a short code. Rows are append-only and
// never updated; classification fields default to "Unknown" rather than
// empty so analytics grouping never sees nulls.
type Click struct {
	ID        int64     `json:"id"`
	URLID     string    `json:"urlId"` // UUID of the parent URL
	IP        string    `json:"ip"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	UserAgent string    `json:"userAgent"`
	Device    string    `json:"device"`  // Desktop, Mobile, Tablet
	Browser   string    `json:"browser"` // Chrome, Firefox, Safari, etc.
	OS        string    `json:"os"`      // Windows, macOS, Android, iOS, etc.
	Referer   string    `json:"referer"`
	ClickedAt time.Time `json:"at"`
}
