package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PeterJCLaw/sb-vision/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func webhookRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(&services.Services{}, secret)
	r := gin.New()
	r.POST("/api/webhooks/github", h.HandleGitHubWebhook)
	return r
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	router := webhookRouter("secret")

	body := `{"ref":"refs/heads/main","after":"abc","repository":{"clone_url":"https://example.com/repo.git"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/github", strings.NewReader(body))
	req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	router := webhookRouter("secret")

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/github", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsInvalidPayload(t *testing.T) {
	router := webhookRouter("secret")

	body := []byte(`not json`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/github", strings.NewReader(string(body)))
	req.Header.Set("X-Hub-Signature-256", signPayload("secret", body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRejectsPayloadWithoutRepo(t *testing.T) {
	router := webhookRouter("secret")

	body := []byte(`{"ref":"refs/heads/main","after":"abc","repository":{}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/github", strings.NewReader(string(body)))
	req.Header.Set("X-Hub-Signature-256", signPayload("secret", body))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifySignature(t *testing.T) {
	h := NewWebhookHandler(&services.Services{}, "secret")
	payload := []byte(`{"ref":"refs/heads/main"}`)

	assert.True(t, h.verifySignature(payload, signPayload("secret", payload)))
	assert.False(t, h.verifySignature(payload, signPayload("other", payload)))
	assert.False(t, h.verifySignature(payload, ""))
}
