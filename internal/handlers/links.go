package handlers

import (
	"errors"
	"net/http"

	"linkly/internal/models"
	"linkly/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateLinkRequest struct {
	OriginalURL string `json:"original_url" binding:"required,url"`
}

func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.linkService.Create(req.OriginalURL, requesterID(c), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrCodeExhausted) {
			c.JSON(http.StatusConflict, gin.H{"error": "Could not allocate a short code, try again"})
			return
		}
		h.logger.Error("Link creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

func (h *Handler) ListLinks(c *gin.Context) {
	links, err := h.linkService.ListByOwner(requesterID(c))
	if err != nil {
		h.logger.Error("Link listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list links"})
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *Handler) DeleteLink(c *gin.Context) {
	linkID := c.Param("id")

	// Grab the short code before the row disappears so the redirect cache
	// entry can be dropped too. A stale entry would otherwise serve the
	// deleted link until its TTL runs out.
	var shortCode string
	h.db.Model(&models.Link{}).Where("id = ?", linkID).Select("short_code").Scan(&shortCode)

	if err := h.linkService.Delete(linkID, requesterID(c), c.ClientIP()); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		h.logger.Error("Link deletion failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	if shortCode != "" {
		h.invalidateLinkCache(c.Request.Context(), shortCode)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}
