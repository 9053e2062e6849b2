package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"linkly/internal/services"

	"github.com/gin-gonic/gin"
)

// LinkQR renders a QR code PNG pointing at the short URL. Public, like the
// redirect itself.
func (h *Handler) LinkQR(c *gin.Context) {
	shortCode := c.Param("short_code")

	if _, err := h.linkService.Resolve(shortCode); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		h.logger.Error("QR lookup failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))

	shortURL := "https://" + c.Request.Host + "/urls/" + shortCode
	png, err := h.qrService.GeneratePNG(shortURL, size)
	if err != nil {
		h.logger.Error("QR generation failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
