package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecomlite/internal/server/http/dto"
)

// Health handles GET /api/health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Message: "Server is running"})
}
