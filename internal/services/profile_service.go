package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

type ProfileService struct {
	users database.Collection
}

func NewProfileService(users database.Collection) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Create(ctx context.Context, user models.Document) (string, error) {
	id, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByEmail returns the profile for email, or nil when there is none.
func (s *ProfileService) GetByEmail(ctx context.Context, email string) (models.Document, error) {
	if err := requireParam("email", "query", email); err != nil {
		return nil, err
	}
	user, err := s.users.FindOne(ctx, database.Filter{"email": email})
	if err != nil {
		if errors.Is(err, database.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}
	return user, nil
}

// UpsertByEmail merges patch into the profile for email, creating it if
// absent. The patch can't set _id or move the profile to another email.
func (s *ProfileService) UpsertByEmail(ctx context.Context, email string, patch models.Document) (database.UpdateResult, error) {
	if err := requireParam("email", "query", email); err != nil {
		return database.UpdateResult{}, err
	}

	set := patch.WithoutID()
	if v, ok := set["email"]; ok {
		if same, _ := v.(string); same != email {
			delete(set, "email")
		}
	}

	res, err := s.users.UpdateOne(ctx, database.Filter{"email": email}, set, true)
	if err != nil {
		return database.UpdateResult{}, fmt.Errorf("upsert user %s: %w", email, err)
	}
	return res, nil
}
