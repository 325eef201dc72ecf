package services

import (
	"context"
	"fmt"

	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

type ApplicationServiceOptions struct {
	Applications database.Collection
	// EmptyListNotFound turns an empty list result into ErrNotFound.
	EmptyListNotFound bool
}

type ApplicationService struct {
	applications      database.Collection
	emptyListNotFound bool
}

func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{
		applications:      opts.Applications,
		emptyListNotFound: opts.EmptyListNotFound,
	}
}

// Apply records an application by email. The stored email always comes
// from the argument, not the body. Repeat submissions are not deduplicated.
func (s *ApplicationService) Apply(ctx context.Context, email string, application models.Document) (string, error) {
	if err := requireParam("email", "path", email); err != nil {
		return "", err
	}
	doc := application.WithoutID()
	doc["email"] = email

	id, err := s.applications.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert application: %w", err)
	}
	return id, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, email string) ([]models.Document, error) {
	if err := requireParam("email", "path", email); err != nil {
		return nil, err
	}
	return s.list(ctx, database.Filter{"email": email}, "No applications found for this email")
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID string) ([]models.Document, error) {
	if err := requireParam("jobId", "path", jobID); err != nil {
		return nil, err
	}
	return s.list(ctx, database.Filter{"jobId": jobID}, "No applications found for this job")
}

func (s *ApplicationService) list(ctx context.Context, filter database.Filter, emptyMsg string) ([]models.Document, error) {
	apps, err := s.applications.Find(ctx, filter, database.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if len(apps) == 0 && s.emptyListNotFound {
		return nil, notFound(emptyMsg)
	}
	return apps, nil
}
