package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AgentPisite999/agentpi-backend/internal/common/logger"
)

// NewRouter builds the gin engine with the full route table.
func NewRouter(h *Handler, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS())
	r.Use(Metrics())
	r.Use(RequestLogger(log))

	r.POST("/create-order", h.CreateOrder)
	r.POST("/verify", h.Verify)
	r.POST("/screening", h.SubmitScreening)
	r.GET("/all-screenings/:email", h.AllScreenings)
	r.GET("/check-enrollment/:email", h.CheckEnrollment)
	r.GET("/get-student/:id", h.GetStudent)
	r.POST("/log", h.LogVisitor)

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
