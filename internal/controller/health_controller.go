package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"gruenderai_backend/internal/service"
	"gruenderai_backend/internal/util"
)

type HealthController struct {
	Service *service.AssessmentService
}

func NewHealthController(svc *service.AssessmentService) *HealthController {
	return &HealthController{Service: svc}
}

type StatusResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
	Timestamp      string `json:"timestamp"`
}

// @Summary Service status
// @Tags system
// @Produce json
// @Success 200 {object} StatusResponse
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	util.Success(ctx, StatusResponse{
		Status:    "online",
		Service:   util.ServiceName,
		Version:   util.ServiceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// @Summary Health check
// @Description Reports service health and the number of active sessions
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, HealthResponse{
		Status:         "healthy",
		ActiveSessions: c.Service.ActiveSessions(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}
