package repository

import (
	"database/sql"
	"fmt"
	"time"

	"linkly-be/internal/entities"
	"linkly-be/internal/models"
)

// Fields the grouped-count queries may group by. Column names are never
// taken from request input.
const (
	GroupByCountry  = "country"
	GroupByReferrer = "referer"
	GroupByDevice   = "device"
	GroupByBrowser  = "browser"
	GroupByOS       = "os"
)

var groupColumns = map[string]bool{
	GroupByCountry:  true,
	GroupByReferrer: true,
	GroupByDevice:   true,
	GroupByBrowser:  true,
	GroupByOS:       true,
}

// ClickRepository defines the interface for click log operations. The log
// is append-only; every read is a stateless aggregation over it.
type ClickRepository interface {
	// RecordClick appends the click and increments the parent URL's
	// click_count in one transaction, so the cached count can only lag
	// by whole redirects, never half-apply.
	RecordClick(click *entities.Click) error
	Totals(urlID string) (total int64, uniqueVisitors int64, err error)
	// CountsBy returns grouped counts for one of the GroupBy* fields,
	// sorted descending by count. limit <= 0 means unbounded.
	CountsBy(urlID, field string, limit int) ([]models.GroupCount, error)
	DailyCounts(urlID string, since time.Time) ([]models.BucketCount, error)
	HourlyCounts(urlID string, since time.Time) ([]models.BucketCount, error)
	RecentClicks(urlID string, limit int) ([]models.RecentClick, error)
}

type clickRepository struct {
	db *sql.DB
}

// NewClickRepository creates a new click repository
func NewClickRepository(db *sql.DB) ClickRepository {
	return &clickRepository{db: db}
}

func (r *clickRepository) RecordClick(click *entities.Click) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO url_clicks (url_id, ip, country, city, user_agent, device, browser, os, referer, clicked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		click.URLID,
		click.IP,
		click.Country,
		click.City,
		click.UserAgent,
		click.Device,
		click.Browser,
		click.OS,
		click.Referer,
		click.ClickedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert click: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE urls
		SET click_count = click_count + 1
		WHERE id = $1
	`, click.URLID)
	if err != nil {
		return fmt.Errorf("failed to increment click count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit click: %w", err)
	}

	return nil
}

func (r *clickRepository) Totals(urlID string) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT ip)
		FROM url_clicks
		WHERE url_id = $1
	`

	var total, unique int64
	if err := r.db.QueryRow(query, urlID).Scan(&total, &unique); err != nil {
		return 0, 0, fmt.Errorf("failed to count clicks: %w", err)
	}

	return total, unique, nil
}

func (r *clickRepository) CountsBy(urlID, field string, limit int) ([]models.GroupCount, error) {
	if !groupColumns[field] {
		return nil, fmt.Errorf("unsupported group field %q", field)
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS click_count
		FROM url_clicks
		WHERE url_id = $1
		GROUP BY %s
		ORDER BY click_count DESC
	`, field, field)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.db.Query(query, urlID)
	if err != nil {
		return nil, fmt.Errorf("failed to group clicks by %s: %w", field, err)
	}
	defer rows.Close()

	var counts []models.GroupCount
	for rows.Next() {
		var gc models.GroupCount
		if err := rows.Scan(&gc.Name, &gc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan group count: %w", err)
		}
		counts = append(counts, gc)
	}

	return counts, rows.Err()
}

func (r *clickRepository) DailyCounts(urlID string, since time.Time) ([]models.BucketCount, error) {
	query := `
		SELECT TO_CHAR(clicked_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS bucket, COUNT(*)
		FROM url_clicks
		WHERE url_id = $1 AND clicked_at >= $2
		GROUP BY bucket
		ORDER BY bucket ASC
	`
	return r.bucketCounts(query, urlID, since)
}

func (r *clickRepository) HourlyCounts(urlID string, since time.Time) ([]models.BucketCount, error) {
	query := `
		SELECT TO_CHAR(clicked_at AT TIME ZONE 'UTC', 'HH24') || ':00' AS bucket, COUNT(*)
		FROM url_clicks
		WHERE url_id = $1 AND clicked_at >= $2
		GROUP BY bucket
		ORDER BY bucket ASC
	`
	return r.bucketCounts(query, urlID, since)
}

func (r *clickRepository) bucketCounts(query, urlID string, since time.Time) ([]models.BucketCount, error) {
	rows, err := r.db.Query(query, urlID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to bucket clicks: %w", err)
	}
	defer rows.Close()

	var counts []models.BucketCount
	for rows.Next() {
		var bc models.BucketCount
		if err := rows.Scan(&bc.Bucket, &bc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan bucket count: %w", err)
		}
		counts = append(counts, bc)
	}

	return counts, rows.Err()
}

func (r *clickRepository) RecentClicks(urlID string, limit int) ([]models.RecentClick, error) {
	query := `
		SELECT ip, country, city, device, browser, os, referer, clicked_at
		FROM url_clicks
		WHERE url_id = $1
		ORDER BY clicked_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, urlID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent clicks: %w", err)
	}
	defer rows.Close()

	var clicks []models.RecentClick
	for rows.Next() {
		var rc models.RecentClick
		err := rows.Scan(
			&rc.IP,
			&rc.Country,
			&rc.City,
			&rc.Device,
			&rc.Browser,
			&rc.OS,
			&rc.Referer,
			&rc.At,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		clicks = append(clicks, rc)
	}

	return clicks, rows.Err()
}
