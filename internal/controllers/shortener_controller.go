package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/clientip"
	"linkly-be/internal/middleware"
	"linkly-be/internal/models"
	"linkly-be/internal/repository"
	"linkly-be/internal/service"
)

type ShortenerController struct {
	urlService       service.URLService
	analyticsService service.AnalyticsService
}

func NewShortenerController(urlService service.URLService, analyticsService service.AnalyticsService) *ShortenerController {
	return &ShortenerController{
		urlService:       urlService,
		analyticsService: analyticsService,
	}
}

// CreateShortURL handles POST /api/urls
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Provide a valid URL including http(s)://",
		})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "User ID not found in token",
		})
		return
	}

	response, err := sc.urlService.CreateShortURL(&req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrInvalidCustomCode):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, repository.ErrDuplicateCode), errors.Is(err, service.ErrCodeConflict):
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create short URL"})
		}
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetUserURLs handles GET /api/urls
func (sc *ShortenerController) GetUserURLs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "User ID not found in token",
		})
		return
	}

	urls, err := sc.urlService.GetUserURLs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to list URLs",
		})
		return
	}

	if urls == nil {
		urls = []*models.URLResponse{}
	}
	c.JSON(http.StatusOK, urls)
}

// GetURLAnalytics handles GET /api/urls/:id/analytics
func (sc *ShortenerController) GetURLAnalytics(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "User ID not found in token",
		})
		return
	}

	analytics, err := sc.analyticsService.GetLinkAnalytics(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrURLNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "URL not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to compute analytics",
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetURLInfo handles GET /api/urls/info/:code - public lookup, no click
// is recorded
func (sc *ShortenerController) GetURLInfo(c *gin.Context) {
	info, err := sc.urlService.GetURLInfo(c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrURLNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Short URL not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to look up URL",
		})
		return
	}

	c.JSON(http.StatusOK, info)
}

// RedirectToURL handles GET /:code - records the click and redirects
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	visit := service.Visit{
		IP:        clientip.FromRequest(c.GetHeader("X-Forwarded-For"), c.Request.RemoteAddr),
		UserAgent: c.GetHeader("User-Agent"),
		Referer:   c.GetHeader("Referer"),
	}

	originalURL, err := sc.urlService.ResolveAndRecord(c.Param("code"), visit)
	if err != nil {
		if errors.Is(err, repository.ErrURLNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Short URL not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to resolve URL",
		})
		return
	}

	// 302 so browsers keep coming back and every visit is recorded
	c.Redirect(http.StatusFound, originalURL)
}
