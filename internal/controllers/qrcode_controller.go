package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"linkly-be/internal/repository"
	"linkly-be/internal/service"
)

type QRCodeController struct {
	urlService service.URLService
	baseURL    string
}

func NewQRCodeController(urlService service.URLService, baseURL string) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// GenerateQRCode handles GET /api/urls/qr/:code - renders a QR code PNG
// for an existing short URL
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	info, err := qc.urlService.GetURLInfo(c.Param("code"))
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

	shortURL := fmt.Sprintf("%s/%s", qc.baseURL, info.ShortCode)

	pngData, err := qrcode.Encode(shortURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
