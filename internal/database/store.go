package database

import (
	"context"
	"errors"
	"reflect"
	"sort"

	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

var (
	// ErrNoDocuments is returned by FindOne when nothing matches the filter.
	ErrNoDocuments = errors.New("database: no documents in result")
	// ErrUnavailable is returned by every call on a store that never connected.
	ErrUnavailable = errors.New("database: document store unavailable")
)

// Filter matches documents whose fields equal the given string values.
// The models.IDField key matches the document identity.
type Filter map[string]string

// FindOptions windows a Find. Zero values mean no skip and no limit.
type FindOptions struct {
	Skip  int64
	Limit int64
}

// UpdateResult describes the outcome of UpdateOne.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    string
}

// Collection is a named group of documents.
type Collection interface {
	InsertOne(ctx context.Context, doc models.Document) (string, error)
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]models.Document, error)
	FindOne(ctx context.Context, filter Filter) (models.Document, error)
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
	// UpdateOne sets the given top-level fields on the first match. With
	// upsert, a missing document is created from the filter fields plus set.
	UpdateOne(ctx context.Context, filter Filter, set models.Document, upsert bool) (UpdateResult, error)
	// EstimatedDocumentCount may lag concurrent writes.
	EstimatedDocumentCount(ctx context.Context) (int64, error)
}

// Store hands out collections over one long-lived connection.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close() error
}

// sortedKeys keeps generated queries deterministic.
func (f Filter) sortedKeys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matches reports whether doc satisfies every field of the filter.
func (f Filter) matches(id string, doc models.Document) bool {
	for k, want := range f {
		if k == models.IDField {
			if id != want {
				return false
			}
			continue
		}
		got, ok := doc[k].(string)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// applySet merges set into a copy of doc and reports whether anything changed.
func applySet(doc, set models.Document) (models.Document, bool) {
	merged := doc.Clone()
	if merged == nil {
		merged = models.Document{}
	}
	changed := false
	for k, v := range set {
		if k == models.IDField {
			continue
		}
		if old, ok := merged[k]; ok && reflect.DeepEqual(old, v) {
			continue
		}
		merged[k] = models.CloneValue(v)
		changed = true
	}
	return merged, changed
}

// upsertSeed builds the document inserted by an upsert that matched nothing:
// equality fields from the filter, overlaid with set.
func upsertSeed(filter Filter, set models.Document) models.Document {
	seed := models.Document{}
	for k, v := range filter {
		if k == models.IDField {
			continue
		}
		seed[k] = v
	}
	merged, _ := applySet(seed, set)
	return merged
}
