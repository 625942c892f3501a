package routes

import (
	"github.com/PeterJCLaw/sb-vision/internal/api/handlers"
	"github.com/PeterJCLaw/sb-vision/internal/services"
	"github.com/gin-gonic/gin"
)

func InitRouter(services *services.Services, webhookSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	handlers := handlers.NewHandlers(services, webhookSecret)

	SetupRunRoutes(router, handlers)
	SetupWebhookRoutes(router, handlers)
	return router
}
