package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
	"github.com/Razzak118348/University-job-portal-server/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
	Logger     *slog.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, logger *slog.Logger) *JobHandler {
	return &JobHandler{JobService: j, Logger: logger}
}

// CreateJob is POST /jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	job, ok := bindDocument(c)
	if !ok {
		return
	}
	id, err := h.JobService.Create(c.Request.Context(), job)
	if err != nil {
		respondError(c, h.Logger, "post job", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.InsertResponse{Message: "Job posted successfully", InsertedID: id})
}

// ListAllJobs is GET /allJobs
func (h *JobHandler) ListAllJobs(c *gin.Context) {
	jobs, err := h.JobService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "list jobs", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListJobsPaged is GET /jobs?page=&limit=
func (h *JobHandler) ListJobsPaged(c *gin.Context) {
	page := queryInt(c, "page", services.DefaultPage)
	limit := queryInt(c, "limit", services.DefaultPageLimit)

	result, err := h.JobService.ListPaged(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.Logger, "list job page", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetJob is GET /allJobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "get job", err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobsByOwner is GET /jobs/:email
func (h *JobHandler) ListJobsByOwner(c *gin.Context) {
	jobs, err := h.JobService.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.Logger, "list jobs by owner", err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// DeleteJob is DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.JobService.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, "delete job", err)
		return
	}
	c.JSON(http.StatusOK, dtos.MessageResponse{Message: "Job deleted successfully"})
}

// queryInt reads a positive integer query value the way a lenient form
// parser does: leading whitespace and an optional sign, then as many digits
// as follow ("2abc" and "2.5" read as 2). It falls back to def when no
// digits lead, or the value is below 1 or overflows.
func queryInt(c *gin.Context, key string, def int64) int64 {
	raw := strings.TrimLeft(c.Query(key), " \t\n\r")
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}
