package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
)

const rootMessage = "Job Portal Server is Running"

// Pinger is satisfied by database.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Root is GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, rootMessage)
}

// HealthCheck is GET /healthz. It reports 503 while the store is unreachable.
func HealthCheck(store Pinger, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			logger.WarnContext(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, dtos.HealthResponse{Status: "unavailable", Error: "document store unreachable"})
			return
		}
		c.JSON(http.StatusOK, dtos.HealthResponse{Status: "ok"})
	}
}
