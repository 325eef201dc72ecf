package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
	"github.com/Razzak118348/University-job-portal-server/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	Logger             *slog.Logger
}

func NewApplicationHandler(a *services.ApplicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a, Logger: logger}
}

// Apply is POST /jobApplications/:email
func (h *ApplicationHandler) Apply(c *gin.Context) {
	application, ok := bindDocument(c)
	if !ok {
		return
	}
	id, err := h.ApplicationService.Apply(c.Request.Context(), c.Param("email"), application)
	if err != nil {
		respondError(c, h.Logger, "submit application", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.InsertResponse{Message: "Application submitted successfully", InsertedID: id})
}

// ListByApplicant is GET /jobApplications/:email
func (h *ApplicationHandler) ListByApplicant(c *gin.Context) {
	apps, err := h.ApplicationService.ListByApplicant(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.Logger, "list applications by applicant", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob is GET /jobApplications/job/:jobId
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	apps, err := h.ApplicationService.ListByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		respondError(c, h.Logger, "list applications by job", err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
