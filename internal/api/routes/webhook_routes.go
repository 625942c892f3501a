package routes

import (
	"github.com/PeterJCLaw/sb-vision/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

func SetupWebhookRoutes(r *gin.Engine, handlers *handlers.Handlers) {
	r.POST("/api/webhooks/github", handlers.WebhookHandler.HandleGitHubWebhook)
}
