package database

import (
	"context"
	"fmt"

	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// UnavailableStore stands in when the startup connection failed, so the
// HTTP listener can still come up. Every operation fails with ErrUnavailable.
type UnavailableStore struct {
	cause error
}

// NewUnavailableStore records why the real store could not be opened.
func NewUnavailableStore(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

func (s *UnavailableStore) err() error {
	if s.cause == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, s.cause)
}

func (s *UnavailableStore) Collection(string) Collection { return unavailableCollection{s} }
func (s *UnavailableStore) Ping(context.Context) error   { return s.err() }
func (s *UnavailableStore) Close() error                 { return nil }

type unavailableCollection struct {
	store *UnavailableStore
}

func (c unavailableCollection) InsertOne(context.Context, models.Document) (string, error) {
	return "", c.store.err()
}

func (c unavailableCollection) Find(context.Context, Filter, FindOptions) ([]models.Document, error) {
	return nil, c.store.err()
}

func (c unavailableCollection) FindOne(context.Context, Filter) (models.Document, error) {
	return nil, c.store.err()
}

func (c unavailableCollection) DeleteOne(context.Context, Filter) (int64, error) {
	return 0, c.store.err()
}

func (c unavailableCollection) UpdateOne(context.Context, Filter, models.Document, bool) (UpdateResult, error) {
	return UpdateResult{}, c.store.err()
}

func (c unavailableCollection) EstimatedDocumentCount(context.Context) (int64, error) {
	return 0, c.store.err()
}
