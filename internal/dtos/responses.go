package dtos

import "github.com/Razzak118348/University-job-portal-server/internal/models"

// InsertResponse is returned by every create endpoint.
type InsertResponse struct {
	Message    string `json:"message"`
	InsertedID string `json:"insertedId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// JobPage is one window of the paged job listing.
type JobPage struct {
	Jobs        []models.Document `json:"jobs"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int64             `json:"currentPage"`
}

// UpdateResult mirrors a document store's update acknowledgement.
// UpsertedID is null unless the update created a document.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type UpdateResponse struct {
	Message string       `json:"message"`
	Result  UpdateResult `json:"result"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
