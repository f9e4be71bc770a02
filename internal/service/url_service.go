package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"linkly-be/internal/entities"
	"linkly-be/internal/geoip"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
	"linkly-be/internal/shortcode"
	"linkly-be/internal/useragent"
)

// Insert attempts for generated codes before giving up with a conflict
const maxCodeAttempts = 5

// Short codes that shadow the service's own routes
var reservedCodes = map[string]bool{
	"api":    true,
	"health": true,
}

// Visit is the request context captured for one redirect. IP is already
// normalized by the controller.
type Visit struct {
	IP        string
	UserAgent string
	Referer   string
}

// URLService defines the interface for link business logic
type URLService interface {
	CreateShortURL(req *models.CreateURLRequest, userID string) (*models.CreateURLResponse, error)
	GetUserURLs(userID string) ([]*models.URLResponse, error)
	// GetURLInfo is the public code lookup; it never records a click.
	GetURLInfo(shortCode string) (*models.URLInfoResponse, error)
	// ResolveAndRecord returns the destination for a code and records the
	// click. A failed recording is logged, not surfaced: the visitor
	// still gets their redirect.
	ResolveAndRecord(shortCode string, visit Visit) (string, error)
}

type urlService struct {
	urlRepo   repository.URLRepository
	clickRepo repository.ClickRepository
	geo       geoip.Resolver
	baseURL   string
}

// NewURLService creates a new URL service
func NewURLService(urlRepo repository.URLRepository, clickRepo repository.ClickRepository, geo geoip.Resolver, baseURL string) URLService {
	return &urlService{
		urlRepo:   urlRepo,
		clickRepo: clickRepo,
		geo:       geo,
		baseURL:   baseURL,
	}
}

// validOriginalURL accepts absolute http/https URLs only
func validOriginalURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CreateShortURL validates the request and inserts the link. Custom codes
// get a single attempt; generated codes are retried with fresh codes on
// uniqueness violations up to maxCodeAttempts. The check-then-insert race
// is accepted: the store's unique index is the real guarantee.
func (s *urlService) CreateShortURL(req *models.CreateURLRequest, userID string) (*models.CreateURLResponse, error) {
	if !validOriginalURL(req.OriginalURL) {
		return nil, ErrInvalidURL
	}

	var created *entities.URL

	if req.CustomCode != "" {
		if !shortcode.ValidCustom(req.CustomCode) || reservedCodes[strings.ToLower(req.CustomCode)] {
			return nil, ErrInvalidCustomCode
		}

		u, err := s.urlRepo.Create(req.CustomCode, req.OriginalURL, userID)
		if err != nil {
			return nil, err // ErrDuplicateCode maps to a conflict upstream
		}
		created = u
	} else {
		backoff := retry.WithMaxRetries(maxCodeAttempts-1, retry.NewConstant(10*time.Millisecond))
		err := retry.Do(context.Background(), backoff, func(ctx context.Context) error {
			code, err := shortcode.Generate()
			if err != nil {
				return err
			}

			u, err := s.urlRepo.Create(code, req.OriginalURL, userID)
			if errors.Is(err, repository.ErrDuplicateCode) {
				return retry.RetryableError(err)
			}
			if err != nil {
				return err
			}

			created = u
			return nil
		})
		if err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				return nil, ErrCodeConflict
			}
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}
	}

	return &models.CreateURLResponse{
		ID:          created.ID,
		ShortCode:   created.ShortCode,
		ShortURL:    fmt.Sprintf("%s/%s", s.baseURL, created.ShortCode),
		OriginalURL: created.OriginalURL,
	}, nil
}

// GetUserURLs retrieves all links owned by a user, newest first
func (s *urlService) GetUserURLs(userID string) ([]*models.URLResponse, error) {
	urls, err := s.urlRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.URLResponse, len(urls))
	for i, u := range urls {
		responses[i] = &models.URLResponse{
			ID:          u.ID,
			ShortCode:   u.ShortCode,
			OriginalURL: u.OriginalURL,
			ClickCount:  u.ClickCount,
			CreatedAt:   u.CreatedAt,
		}
	}

	return responses, nil
}

// GetURLInfo resolves a code without recording anything
func (s *urlService) GetURLInfo(shortCode string) (*models.URLInfoResponse, error) {
	u, err := s.urlRepo.FindByShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	return &models.URLInfoResponse{
		OriginalURL: u.OriginalURL,
		ShortCode:   u.ShortCode,
	}, nil
}

func (s *urlService) ResolveAndRecord(shortCode string, visit Visit) (string, error) {
	u, err := s.urlRepo.FindByShortCode(shortCode)
	if err != nil {
		return "", err
	}

	location := s.geo.Lookup(visit.IP)
	ua := useragent.Parse(visit.UserAgent)

	click := &entities.Click{
		URLID:     u.ID,
		IP:        visit.IP,
		Country:   location.Country,
		City:      location.City,
		UserAgent: visit.UserAgent,
		Device:    ua.Device,
		Browser:   ua.Browser,
		OS:        ua.OS,
		Referer:   visit.Referer,
		ClickedAt: time.Now().UTC(),
	}

	if err := s.clickRepo.RecordClick(click); err != nil {
		log.Printf("failed to record click for %s: %v", shortCode, err)
	}

	return u.OriginalURL, nil
}
