package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"linkly/internal/config"
	"linkly/internal/models"
	"linkly/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

func setupTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Link{}, &models.ClickEvent{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		JWTSecret:     "test-secret-12345678901234567890",
		TokenTTLHours: 1,
	}

	audit := services.NewAuditService(db, logger)
	stats := services.NewStatsService(db, logger)
	auth := services.NewAuthService(db, audit, []byte(cfg.JWTSecret), time.Hour)
	links := services.NewLinkService(db, audit)
	qr := services.NewQRService()

	// Dummy redis client (not connected) with no retries; every cache
	// access falls through to the database.
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})

	h := NewHandler(cfg, logger, db, rdb, auth, links, stats, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

// registerTestUser creates an account through the API and returns its id
// and bearer token.
func registerTestUser(t *testing.T, r *gin.Engine, email string) (userID, token string) {
	t.Helper()
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{
		"username": "tester",
		"email":    email,
		"password": "password123",
	})
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		User        models.User `json:"user"`
		AccessToken string      `json:"access_token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal register response: %v", err)
	}
	return resp.User.ID, resp.AccessToken
}

func createTestLink(t *testing.T, r *gin.Engine, token, originalURL string) models.Link {
	t.Helper()
	w := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]string{"original_url": originalURL})
	req, _ := http.NewRequest("POST", "/urls", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create link failed: %d %s", w.Code, w.Body.String())
	}

	var link models.Link
	if err := json.Unmarshal(w.Body.Bytes(), &link); err != nil {
		t.Fatalf("failed to unmarshal link: %v", err)
	}
	return link
}
