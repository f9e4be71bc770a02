package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linkly-be/internal/entities"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
	"linkly-be/internal/repository/mocks"
)

func TestGetLinkAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	urlRepo := mocks.NewMockURLRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	svc := NewAnalyticsService(urlRepo, clickRepo)

	urlRepo.EXPECT().
		FindByIDAndUser("url-1", "user-1").
		Return(&entities.URL{ID: "url-1", ShortCode: "abc12345", OriginalURL: "https://example.com", ClickCount: 40}, nil)

	clickRepo.EXPECT().Totals("url-1").Return(int64(42), int64(17), nil)
	clickRepo.EXPECT().
		CountsBy("url-1", repository.GroupByCountry, 10).
		Return([]models.GroupCount{{Name: "BD", Count: 30}, {Name: "DE", Count: 12}}, nil)
	clickRepo.EXPECT().
		CountsBy("url-1", repository.GroupByReferrer, 10).
		Return([]models.GroupCount{{Name: "", Count: 42}}, nil)
	clickRepo.EXPECT().
		CountsBy("url-1", repository.GroupByDevice, 0).
		Return([]models.GroupCount{{Name: "Desktop", Count: 40}, {Name: "Mobile", Count: 2}}, nil)
	clickRepo.EXPECT().
		CountsBy("url-1", repository.GroupByBrowser, 0).
		Return([]models.GroupCount{{Name: "Chrome", Count: 42}}, nil)
	clickRepo.EXPECT().
		CountsBy("url-1", repository.GroupByOS, 0).
		Return([]models.GroupCount{{Name: "Windows 10/11", Count: 42}}, nil)
	clickRepo.EXPECT().
		DailyCounts("url-1", gomock.Any()).
		DoAndReturn(func(urlID string, since time.Time) ([]models.BucketCount, error) {
			// Trailing 7-day window
			assert.WithinDuration(t, time.Now().UTC().Add(-7*24*time.Hour), since, time.Minute)
			return []models.BucketCount{{Bucket: "2026-08-31", Count: 40}, {Bucket: "2026-09-01", Count: 2}}, nil
		})
	clickRepo.EXPECT().
		HourlyCounts("url-1", gomock.Any()).
		DoAndReturn(func(urlID string, since time.Time) ([]models.BucketCount, error) {
			// Trailing 24-hour window
			assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), since, time.Minute)
			return []models.BucketCount{{Bucket: "09:00", Count: 2}}, nil
		})
	clickRepo.EXPECT().
		RecentClicks("url-1", 50).
		Return([]models.RecentClick{{IP: "198.51.100.7", Country: "BD", Device: "Desktop", Browser: "Chrome", OS: "Windows 10/11"}}, nil)

	resp, err := svc.GetLinkAnalytics("url-1", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "abc12345", resp.URL.ShortCode)
	assert.Equal(t, int64(40), resp.URL.ClickCount) // cached count may lag total
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, int64(17), resp.UniqueVisitors)
	assert.LessOrEqual(t, resp.UniqueVisitors, resp.Total)
	assert.Len(t, resp.ByCountry, 2)
	assert.Len(t, resp.ByDevice, 2)
	assert.Len(t, resp.RecentClicks, 1)
}

func TestGetLinkAnalyticsEmptyLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	urlRepo := mocks.NewMockURLRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	svc := NewAnalyticsService(urlRepo, clickRepo)

	urlRepo.EXPECT().
		FindByIDAndUser("url-1", "user-1").
		Return(&entities.URL{ID: "url-1", ShortCode: "abc12345"}, nil)

	clickRepo.EXPECT().Totals("url-1").Return(int64(0), int64(0), nil)
	clickRepo.EXPECT().CountsBy("url-1", gomock.Any(), gomock.Any()).Return(nil, nil).Times(5)
	clickRepo.EXPECT().DailyCounts("url-1", gomock.Any()).Return(nil, nil)
	clickRepo.EXPECT().HourlyCounts("url-1", gomock.Any()).Return(nil, nil)
	clickRepo.EXPECT().RecentClicks("url-1", 50).Return(nil, nil)

	resp, err := svc.GetLinkAnalytics("url-1", "user-1")
	require.NoError(t, err)

	// Facets are empty slices, never nil, so they serialize as []
	assert.NotNil(t, resp.ByCountry)
	assert.NotNil(t, resp.ByReferrer)
	assert.NotNil(t, resp.ByDevice)
	assert.NotNil(t, resp.ByBrowser)
	assert.NotNil(t, resp.ByOS)
	assert.NotNil(t, resp.Last7Days)
	assert.NotNil(t, resp.Last24Hours)
	assert.NotNil(t, resp.RecentClicks)
	assert.Empty(t, resp.ByCountry)
}

func TestGetLinkAnalyticsNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	urlRepo := mocks.NewMockURLRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	svc := NewAnalyticsService(urlRepo, clickRepo)

	// Someone else's link is indistinguishable from a missing one
	urlRepo.EXPECT().
		FindByIDAndUser("url-1", "intruder").
		Return(nil, repository.ErrURLNotFound)

	_, err := svc.GetLinkAnalytics("url-1", "intruder")
	assert.ErrorIs(t, err, repository.ErrURLNotFound)
}
