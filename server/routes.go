package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/health", s.HealthCheck)

	// Newznab
	r.GET("/api", s.newznabHandler)
	r.GET("/api/", s.newznabHandler)

	if s.Params.Pprof {
		pprof.Register(r)
	}
}
