package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"linkly/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateLink(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)
	_, token := registerTestUser(t, r, "alice@example.com")

	t.Run("Requires auth", func(t *testing.T) {
		w := postJSON(r, "/urls", map[string]string{"original_url": "https://example.com"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Creates a link", func(t *testing.T) {
		link := createTestLink(t, r, token, "https://example.com/long")

		assert.Len(t, link.ShortCode, 8)
		assert.Equal(t, "https://example.com/long", link.OriginalURL)
		assert.Equal(t, 0, link.Clicks)
	})

	t.Run("Rejects malformed URL", func(t *testing.T) {
		w := httptest.NewRecorder()
		body, _ := json.Marshal(map[string]string{"original_url": "not a url"})
		req, _ := http.NewRequest("POST", "/urls", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListLinks(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)
	aliceID, aliceToken := registerTestUser(t, r, "alice@example.com")
	_, bobToken := registerTestUser(t, r, "bob@example.com")

	createTestLink(t, r, aliceToken, "https://alice.example/1")
	createTestLink(t, r, aliceToken, "https://alice.example/2")
	createTestLink(t, r, bobToken, "https://bob.example/1")

	t.Run("Requires auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/urls", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Only the caller's links", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/urls", nil)
		req.Header.Set("Authorization", "Bearer "+aliceToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var links []models.Link
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
		assert.Len(t, links, 2)
		for _, l := range links {
			assert.Equal(t, aliceID, l.OwnerID)
		}
	})
}

func TestDeleteLink(t *testing.T) {
	h, _ := setupTestHandler(t)
	r := setupTestRouter(h)
	_, aliceToken := registerTestUser(t, r, "alice@example.com")
	_, bobToken := registerTestUser(t, r, "bob@example.com")

	link := createTestLink(t, r, aliceToken, "https://alice.example")

	deleteReq := func(id, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/urls/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Requires auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/urls/"+link.ID, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Non-owner gets 404 and the link survives", func(t *testing.T) {
		w := deleteReq(link.ID, bobToken)
		assert.Equal(t, http.StatusNotFound, w.Code)

		// still resolvable
		rw := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/urls/"+link.ShortCode, nil)
		r.ServeHTTP(rw, req)
		assert.Equal(t, http.StatusFound, rw.Code)
	})

	t.Run("Owner delete", func(t *testing.T) {
		w := deleteReq(link.ID, aliceToken)
		assert.Equal(t, http.StatusOK, w.Code)

		rw := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/urls/"+link.ShortCode, nil)
		r.ServeHTTP(rw, req)
		assert.Equal(t, http.StatusNotFound, rw.Code)
	})

	t.Run("Unknown id", func(t *testing.T) {
		w := deleteReq("no-such-id", aliceToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
