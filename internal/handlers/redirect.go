package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"linkly/internal/models"
	"linkly/internal/services"

	"github.com/gin-gonic/gin"
)

const linkCacheTTL = 10 * time.Minute

func linkCacheKey(shortCode string) string {
	return "link:" + shortCode
}

// RedirectToURL is the public hot path: cache-aside lookup, best-effort
// click accounting, then a 302 to the original URL.
func (h *Handler) RedirectToURL(c *gin.Context) {
	shortCode := c.Param("short_code")
	ctx := c.Request.Context()

	var link models.Link

	cacheHit := false
	if h.rdb != nil {
		val, err := h.rdb.Get(ctx, linkCacheKey(shortCode)).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(val), &link); err == nil {
				cacheHit = true
			}
		}
	}

	if !cacheHit {
		resolved, err := h.linkService.Resolve(shortCode)
		if err != nil {
			if errors.Is(err, services.ErrLinkNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
				return
			}
			h.logger.Error("Link resolution failed", "short_code", shortCode, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		link = *resolved

		if h.rdb != nil {
			if data, err := json.Marshal(link); err == nil {
				h.rdb.Set(ctx, linkCacheKey(shortCode), data, linkCacheTTL)
			}
		}
	}

	// Click accounting is best-effort: a failed increment must never
	// break the link itself.
	if err := h.linkService.RecordClick(link.ID); err != nil {
		h.logger.Warn("Failed to record click", "short_code", shortCode, "error", err)
	}

	h.statsService.RecordClickAsync(models.ClickEvent{
		LinkID:    link.ID,
		Timestamp: time.Now(),
		Referrer:  c.Request.Referer(),
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})

	c.Redirect(http.StatusFound, link.OriginalURL)
}

func (h *Handler) invalidateLinkCache(ctx context.Context, shortCode string) {
	if h.rdb == nil {
		return
	}
	if err := h.rdb.Del(ctx, linkCacheKey(shortCode)).Err(); err != nil {
		h.logger.Warn("Failed to invalidate link cache", "short_code", shortCode, "error", err)
	}
}
