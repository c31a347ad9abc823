package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ticket-slash/internal/api"
	"ticket-slash/internal/server/middleware"
)

const (
	StatusOk           = "ok"
	StatusDown         = "down"
	healthStoreTimeout = 2 * time.Second
)

type Health struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Language          string `json:"language"`
	Message           string `json:"message"`
	Tasks             int    `json:"tasks"`
}

type HealthHandler struct {
	businessAPI api.BusinessAPI
	appName     string
	appVersion  string
}

func NewHealthHandler(businessAPI api.BusinessAPI, appName, appVersion string) *HealthHandler {
	return &HealthHandler{businessAPI: businessAPI, appName: appName, appVersion: appVersion}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	// Avoid hanging health checks if the store stalls.
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthStoreTimeout)
	defer cancel()

	tasks, err := h.businessAPI.ListTasks(ctx)
	if err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, Health{
		AppName:           h.appName,
		AppVersion:        h.appVersion,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Message:           message,
		Tasks:             len(tasks),
	})
}
