package models

import "time"

// GroupCount is one row of a grouped count facet (country, referrer, ...),
// sorted descending by count.
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// BucketCount is one non-empty time bucket. Date is "2006-01-02" for daily
// buckets and "15:00" for hourly buckets, both UTC. Buckets with no events
// are omitted; zero-filling is the caller's job.
type BucketCount struct {
	Bucket string `json:"bucket"`
	Count  int64  `json:"count"`
}

// RecentClick is one of the most recent click events with its
// classification fields.
type RecentClick struct {
	IP      string    `json:"ip"`
	Country string    `json:"country"`
	City    string    `json:"city"`
	Device  string    `json:"device"`
	Browser string    `json:"browser"`
	OS      string    `json:"os"`
	Referer string    `json:"referer"`
	At      time.Time `json:"at"`
}

// AnalyticsURL echoes the link the analytics belong to
type AnalyticsURL struct {
	ID          string `json:"id"`
	ShortCode   string `json:"shortCode"`
	OriginalURL string `json:"originalUrl"`
	ClickCount  int64  `json:"clicksCount"`
}

// AnalyticsResponse is the full aggregate for one link. Recomputed from
// the click log on every request; total always equals the click-event
// count, while the link's cached clicksCount may lag behind it.
type AnalyticsResponse struct {
	URL            AnalyticsURL  `json:"url"`
	Total          int64         `json:"total"`
	UniqueVisitors int64         `json:"uniqueVisitors"`
	ByCountry      []GroupCount  `json:"byCountry"`
	ByReferrer     []GroupCount  `json:"byReferrer"`
	ByDevice       []GroupCount  `json:"byDevice"`
	ByBrowser      []GroupCount  `json:"byBrowser"`
	ByOS           []GroupCount  `json:"byOs"`
	Last7Days      []BucketCount `json:"last7Days"`
	Last24Hours    []BucketCount `json:"last24Hours"`
	RecentClicks   []RecentClick `json:"recentClicks"`
}
