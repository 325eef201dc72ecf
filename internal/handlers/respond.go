package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
	"github.com/Razzak118348/University-job-portal-server/internal/services"
)

const internalErrorMessage = "Internal Server Error"

// respondError maps service errors onto status codes. Store failures are
// logged and never shown to the caller.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	var pe *services.ParamError
	switch {
	case errors.As(err, &pe):
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: pe.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			"op", op,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: internalErrorMessage})
	}
}

// bindDocument decodes the request body as a JSON object. An empty body is
// an empty document. It writes the 400 itself and returns false on failure.
func bindDocument(c *gin.Context) (models.Document, bool) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Document{}, true
		}
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: "Request body must be a JSON object"})
		return nil, false
	}
	if doc == nil {
		doc = models.Document{}
	}
	return doc, true
}
