package service

import (
	"fmt"
	"time"

	"linkly-be/internal/models"
	"linkly-be/internal/repository"
)

const (
	topGroupLimit    = 10
	recentClickLimit = 50
)

// AnalyticsService computes click aggregates for a single link. Every
// call recomputes from the click log; nothing is materialized.
type AnalyticsService interface {
	// GetLinkAnalytics aggregates clicks for a link owned by userID.
	// Unknown ids and other users' links both come back as
	// repository.ErrURLNotFound.
	GetLinkAnalytics(linkID, userID string) (*models.AnalyticsResponse, error)
}

type analyticsService struct {
	urlRepo   repository.URLRepository
	clickRepo repository.ClickRepository
	now       func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(urlRepo repository.URLRepository, clickRepo repository.ClickRepository) AnalyticsService {
	return &analyticsService{
		urlRepo:   urlRepo,
		clickRepo: clickRepo,
		now:       time.Now,
	}
}

func (s *analyticsService) GetLinkAnalytics(linkID, userID string) (*models.AnalyticsResponse, error) {
	u, err := s.urlRepo.FindByIDAndUser(linkID, userID)
	if err != nil {
		return nil, err
	}

	total, unique, err := s.clickRepo.Totals(u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}

	byCountry, err := s.clickRepo.CountsBy(u.ID, repository.GroupByCountry, topGroupLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	byReferrer, err := s.clickRepo.CountsBy(u.ID, repository.GroupByReferrer, topGroupLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	byDevice, err := s.clickRepo.CountsBy(u.ID, repository.GroupByDevice, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	byBrowser, err := s.clickRepo.CountsBy(u.ID, repository.GroupByBrowser, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	byOS, err := s.clickRepo.CountsBy(u.ID, repository.GroupByOS, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}

	now := s.now().UTC()
	last7Days, err := s.clickRepo.DailyCounts(u.ID, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}
	last24Hours, err := s.clickRepo.HourlyCounts(u.ID, now.Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}

	recent, err := s.clickRepo.RecentClicks(u.ID, recentClickLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate clicks: %w", err)
	}

	return &models.AnalyticsResponse{
		URL: models.AnalyticsURL{
			ID:          u.ID,
			ShortCode:   u.ShortCode,
			OriginalURL: u.OriginalURL,
			ClickCount:  u.ClickCount,
		},
		Total:          total,
		UniqueVisitors: unique,
		ByCountry:      orEmptyGroups(byCountry),
		ByReferrer:     orEmptyGroups(byReferrer),
		ByDevice:       orEmptyGroups(byDevice),
		ByBrowser:      orEmptyGroups(byBrowser),
		ByOS:           orEmptyGroups(byOS),
		Last7Days:      orEmptyBuckets(last7Days),
		Last24Hours:    orEmptyBuckets(last24Hours),
		RecentClicks:   orEmptyClicks(recent),
	}, nil
}

// Empty facets serialize as [] rather than null

func orEmptyGroups(in []models.GroupCount) []models.GroupCount {
	if in == nil {
		return []models.GroupCount{}
	}
	return in
}

func orEmptyBuckets(in []models.BucketCount) []models.BucketCount {
	if in == nil {
		return []models.BucketCount{}
	}
	return in
}

func orEmptyClicks(in []models.RecentClick) []models.RecentClick {
	if in == nil {
		return []models.RecentClick{}
	}
	return in
}
