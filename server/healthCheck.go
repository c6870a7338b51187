package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthCheckResponse struct {
	Status string `json:"status"`
}

// HealthCheck reports that the process is up. Easynews isn't contacted.
func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthCheckResponse{Status: "ok"})
}
