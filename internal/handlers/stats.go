package handlers

import (
	"errors"
	"net/http"

	"linkly/internal/models"
	"linkly/internal/services"

	"github.com/gin-gonic/gin"
)

// LinkStats returns the click counter plus a breakdown of recent events.
// Owner-scoped: asking about someone else's code looks like a 404.
func (h *Handler) LinkStats(c *gin.Context) {
	shortCode := c.Param("short_code")

	link, err := h.linkService.ResolveOwned(shortCode, requesterID(c))
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		h.logger.Error("Stats lookup failed", "short_code", shortCode, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	var recentClicks []models.ClickEvent
	h.db.Where("link_id = ?", link.ID).Order("timestamp desc").Limit(50).Find(&recentClicks)

	var browserStats []struct {
		Browser string `json:"browser"`
		Count   int    `json:"count"`
	}
	h.db.Model(&models.ClickEvent{}).Where("link_id = ?", link.ID).
		Select("browser, count(*) as count").Group("browser").Order("count desc").Scan(&browserStats)

	var deviceStats []struct {
		DeviceType string `json:"device_type"`
		Count      int    `json:"count"`
	}
	h.db.Model(&models.ClickEvent{}).Where("link_id = ?", link.ID).
		Select("device_type, count(*) as count").Group("device_type").Order("count desc").Scan(&deviceStats)

	var referrerStats []struct {
		Referrer string `json:"referrer"`
		Count    int    `json:"count"`
	}
	h.db.Model(&models.ClickEvent{}).Where("link_id = ?", link.ID).
		Select("referrer, count(*) as count").Group("referrer").Order("count desc").Scan(&referrerStats)

	c.JSON(http.StatusOK, gin.H{
		"link":           link,
		"clicks":         link.Clicks,
		"recent_clicks":  recentClicks,
		"browser_stats":  browserStats,
		"device_stats":   deviceStats,
		"referrer_stats": referrerStats,
	})
}
