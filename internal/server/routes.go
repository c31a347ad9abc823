package server

import (
	"github.com/gin-gonic/gin"

	"ticket-slash/internal/server/handlers"
	"ticket-slash/internal/server/middleware"
)

func RegisterRoutes(r *gin.Engine, language string, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(language))
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.POST("/tasks/:id/toggle", taskHandler.ToggleTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
		api.GET("/search", taskHandler.Search)
	}
}
