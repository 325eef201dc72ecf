package database

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// MemoryStore keeps collections in process memory. Documents are returned
// in insertion order, like a document store's natural order.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
	newID       func() string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
		newID:       uuid.NewString,
	}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{newID: s.newID}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}

type memoryEntry struct {
	id  string
	doc models.Document
}

type memoryCollection struct {
	mu      sync.RWMutex
	entries []memoryEntry
	newID   func() string
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc models.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := c.newID()
	c.mu.Lock()
	c.entries = append(c.entries, memoryEntry{id: id, doc: doc.WithoutID()})
	c.mu.Unlock()
	return id, nil
}

func (c *memoryCollection) Find(ctx context.Context, filter Filter, opts FindOptions) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []models.Document{}
	var skipped int64
	for _, e := range c.entries {
		if !filter.matches(e.id, e.doc) {
			continue
		}
		if skipped < opts.Skip {
			skipped++
			continue
		}
		if opts.Limit > 0 && int64(len(out)) >= opts.Limit {
			break
		}
		out = append(out, e.document())
	}
	return out, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter Filter) (models.Document, error) {
	docs, err := c.Find(ctx, filter, FindOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if filter.matches(e.id, e.doc) {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter Filter, set models.Document, upsert bool) (UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if !filter.matches(e.id, e.doc) {
			continue
		}
		res := UpdateResult{MatchedCount: 1}
		merged, changed := applySet(e.doc, set)
		if changed {
			c.entries[i].doc = merged
			res.ModifiedCount = 1
		}
		return res, nil
	}

	if !upsert {
		return UpdateResult{}, nil
	}
	id, ok := filter[models.IDField]
	if !ok {
		id = c.newID()
	}
	c.entries = append(c.entries, memoryEntry{id: id, doc: upsertSeed(filter, set)})
	return UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (c *memoryCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.entries)), nil
}

func (e memoryEntry) document() models.Document {
	doc := e.doc.Clone()
	doc[models.IDField] = e.id
	return doc
}
