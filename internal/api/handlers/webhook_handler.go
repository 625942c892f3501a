package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PeterJCLaw/sb-vision/internal/api/requests"
	"github.com/PeterJCLaw/sb-vision/internal/constants"
	"github.com/PeterJCLaw/sb-vision/internal/dto"
	"github.com/PeterJCLaw/sb-vision/internal/services"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookSecret string
	services      *services.Services
}

func NewWebhookHandler(services *services.Services, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		webhookSecret: webhookSecret,
		services:      services,
	}
}

type GitHubPushPayload struct {
	Ref        string `json:"ref"`
	After      string `json:"after"`
	Repository struct {
		CloneURL string `json:"clone_url"`
	} `json:"repository"`
}

func (h *WebhookHandler) HandleGitHubWebhook(c *gin.Context) {
	// 1. Verify signature if secret is configured
	if h.webhookSecret != "" {
		signature := c.GetHeader("X-Hub-Signature-256")
		body, _ := io.ReadAll(c.Request.Body)

		if !h.verifySignature(body, signature) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		// Re-populate body for binding
		c.Request.Body = io.NopCloser(strings.NewReader(string(body)))
	}

	// 2. Parse GitHub payload
	var payload GitHubPushPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	// 3. Extract branch from ref (refs/heads/main -> main)
	branch := strings.TrimPrefix(payload.Ref, "refs/heads/")

	request := requests.SubmitRunRequest{
		RepoURL:    payload.Repository.CloneURL,
		Branch:     &branch,
		CommitHash: &payload.After,
	}
	if err := request.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	err := h.services.QueueService.EnqueueRun(c.Request.Context(), &dto.PipelineRun{
		RepoUrl:    request.RepoURL,
		Branch:     request.Branch,
		CommitHash: request.CommitHash,
		Status:     constants.RunStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, true)
}

func (h *WebhookHandler) verifySignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(payload)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
