package handlers

import (
	"net/http"

	"linkly/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// Public: redirect and QR work without a token
	r.GET("/urls/:short_code", h.RedirectToURL)
	r.GET("/urls/:short_code/qr", h.LinkQR)

	authorized := r.Group("/urls")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("", h.CreateLink)
		authorized.GET("", h.ListLinks)
		authorized.DELETE("/:id", h.DeleteLink)
		authorized.GET("/:short_code/stats", h.LinkStats)
	}

	return r
}
