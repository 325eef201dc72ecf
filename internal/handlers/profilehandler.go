package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/dtos"
	"github.com/Razzak118348/University-job-portal-server/internal/services"
)

type ProfileHandler struct {
	ProfileService *services.ProfileService
	Logger         *slog.Logger
}

func NewProfileHandler(p *services.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{ProfileService: p, Logger: logger}
}

// CreateProfile is POST /profile
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	user, ok := bindDocument(c)
	if !ok {
		return
	}
	id, err := h.ProfileService.Create(c.Request.Context(), user)
	if err != nil {
		respondError(c, h.Logger, "add user", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.InsertResponse{Message: "User added", InsertedID: id})
}

// GetProfile is GET /profile?email=. A missing profile is 200 with null.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.ProfileService.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, h.Logger, "get user", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile is PATCH /profile?email=
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	email := c.Query("email")
	patch, ok := bindDocument(c)
	if !ok {
		return
	}

	h.Logger.DebugContext(c.Request.Context(), "updating user", "email", email, "fields", len(patch))
	res, err := h.ProfileService.UpsertByEmail(c.Request.Context(), email, patch)
	if err != nil {
		respondError(c, h.Logger, "update user", err)
		return
	}
	c.JSON(http.StatusOK, dtos.UpdateResponse{Message: "User updated", Result: updateResult(res)})
}

func updateResult(res database.UpdateResult) dtos.UpdateResult {
	out := dtos.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != "" {
		id := res.UpsertedID
		out.UpsertedID = &id
	}
	return out
}
