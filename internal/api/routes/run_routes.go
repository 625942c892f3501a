package routes

import (
	"github.com/PeterJCLaw/sb-vision/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

func SetupRunRoutes(r *gin.Engine, handlers *handlers.Handlers) {
	r.POST("/api/runs", handlers.RunHandler.SubmitRun)
	r.GET("/api/runs/:id", handlers.RunHandler.GetRun)
}
