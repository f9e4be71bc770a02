package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"linkly-be/internal/entities"
)

// URLRepository defines the interface for URL database operations
type URLRepository interface {
	Create(shortCode, originalURL, userID string) (*entities.URL, error)
	FindByShortCode(shortCode string) (*entities.URL, error)
	// FindByIDAndUser only returns a URL owned by userID. A miss for any
	// reason (unknown id, someone else's link, malformed id) is
	// ErrURLNotFound, so ownership is never disclosed.
	FindByIDAndUser(id, userID string) (*entities.URL, error)
	GetByUserID(userID string) ([]*entities.URL, error)
}

type urlRepository struct {
	db *sql.DB
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB) URLRepository {
	return &urlRepository{db: db}
}

// Create inserts a new URL. The unique index on short_code is the real
// uniqueness guarantee; a violation surfaces as ErrDuplicateCode so the
// service's retry loop can react to it.
func (r *urlRepository) Create(shortCode, originalURL, userID string) (*entities.URL, error) {
	query := `
		INSERT INTO urls (short_code, original_url, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, short_code, original_url, user_id, click_count, created_at
	`

	var url entities.URL
	err := r.db.QueryRow(query, shortCode, originalURL, userID).Scan(
		&url.ID,
		&url.ShortCode,
		&url.OriginalURL,
		&url.UserID,
		&url.ClickCount,
		&url.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return &url, nil
}

// FindByShortCode finds a URL by its short code
func (r *urlRepository) FindByShortCode(shortCode string) (*entities.URL, error) {
	query := `
		SELECT id, short_code, original_url, user_id, click_count, created_at
		FROM urls
		WHERE short_code = $1
	`

	var url entities.URL
	err := r.db.QueryRow(query, shortCode).Scan(
		&url.ID,
		&url.ShortCode,
		&url.OriginalURL,
		&url.UserID,
		&url.ClickCount,
		&url.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrURLNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return &url, nil
}

// FindByIDAndUser finds a URL by id, scoped to its owner
func (r *urlRepository) FindByIDAndUser(id, userID string) (*entities.URL, error) {
	query := `
		SELECT id, short_code, original_url, user_id, click_count, created_at
		FROM urls
		WHERE id = $1 AND user_id = $2
	`

	var url entities.URL
	err := r.db.QueryRow(query, id, userID).Scan(
		&url.ID,
		&url.ShortCode,
		&url.OriginalURL,
		&url.UserID,
		&url.ClickCount,
		&url.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrURLNotFound
	}
	if err != nil {
		// A path id that is not a valid UUID fails the uuid cast (22P02);
		// treat it the same as an unknown id.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			return nil, ErrURLNotFound
		}
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	return &url, nil
}

// GetByUserID retrieves all URLs for a specific user, newest first
func (r *urlRepository) GetByUserID(userID string) ([]*entities.URL, error) {
	query := `
		SELECT id, short_code, original_url, user_id, click_count, created_at
		FROM urls
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get URLs: %w", err)
	}
	defer rows.Close()

	var urls []*entities.URL
	for rows.Next() {
		var url entities.URL
		err := rows.Scan(
			&url.ID,
			&url.ShortCode,
			&url.OriginalURL,
			&url.UserID,
			&url.ClickCount,
			&url.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan URL: %w", err)
		}
		urls = append(urls, &url)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating URLs: %w", err)
	}

	return urls, nil
}
