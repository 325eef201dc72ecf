package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/handlers"
)

// Options wires the router's dependencies.
type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Store          handlers.Pinger
	Jobs           *handlers.JobHandler
	Profiles       *handlers.ProfileHandler
	Applications   *handlers.ApplicationHandler
	// Metrics defaults to a fresh registry.
	Metrics *Metrics
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(opts Options) *gin.Engine {
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(opts.Logger))
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.Root)
	r.GET("/healthz", handlers.HealthCheck(opts.Store, opts.Logger))
	r.GET("/metrics", metrics.Handler())

	// Job Routes
	r.POST("/jobs", opts.Jobs.CreateJob)
	r.GET("/jobs", opts.Jobs.ListJobsPaged)
	r.GET("/jobs/:email", opts.Jobs.ListJobsByOwner)
	r.DELETE("/jobs/:id", opts.Jobs.DeleteJob)
	r.GET("/allJobs", opts.Jobs.ListAllJobs)
	r.GET("/allJobs/:id", opts.Jobs.GetJob)

	// Application Routes
	r.POST("/jobApplications/:email", opts.Applications.Apply)
	r.GET("/jobApplications/:email", opts.Applications.ListByApplicant)
	r.GET("/jobApplications/job/:jobId", opts.Applications.ListByJob)

	// Profile Routes
	r.POST("/profile", opts.Profiles.CreateProfile)
	r.GET("/profile", opts.Profiles.GetProfile)
	r.PATCH("/profile", opts.Profiles.UpdateProfile)

	return r
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
