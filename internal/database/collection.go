package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// GormStore keeps every collection in the documents table, one JSONB body
// per row.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Collection(name string) Collection {
	return &gormCollection{db: s.db, name: name}
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormCollection struct {
	db   *gorm.DB
	name string
}

// naturalOrder approximates insertion order.
const naturalOrder = "created_at, id"

func (c *gormCollection) scope(tx *gorm.DB, filter Filter) *gorm.DB {
	q := tx.Model(&models.DocumentRecord{}).Where("collection = ?", c.name)
	for _, k := range filter.sortedKeys() {
		v := filter[k]
		if k == models.IDField {
			q = q.Where("id = ?", v)
			continue
		}
		// Only string fields match; json_extract_path_text alone would
		// also match numbers and booleans by their text.
		q = q.Where("jsonb_typeof(body -> ?::text) = 'string'", k).
			Where(datatypes.JSONQuery("body").Equals(v, k))
	}
	return q
}

func (c *gormCollection) newRecord(id string, doc models.Document) *models.DocumentRecord {
	return &models.DocumentRecord{
		ID:         id,
		Collection: c.name,
		Body:       datatypes.JSONMap(doc.WithoutID()),
	}
}

func (c *gormCollection) InsertOne(ctx context.Context, doc models.Document) (string, error) {
	rec := c.newRecord(uuid.NewString(), doc)
	if err := c.db.WithContext(ctx).Create(rec).Error; err != nil {
		return "", fmt.Errorf("insert into %s: %w", c.name, err)
	}
	return rec.ID, nil
}

func (c *gormCollection) Find(ctx context.Context, filter Filter, opts FindOptions) ([]models.Document, error) {
	q := c.scope(c.db.WithContext(ctx), filter).Order(naturalOrder)
	if opts.Skip > 0 {
		q = q.Offset(int(opts.Skip))
	}
	if opts.Limit > 0 {
		q = q.Limit(int(opts.Limit))
	}

	var recs []models.DocumentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	docs := make([]models.Document, 0, len(recs))
	for _, r := range recs {
		docs = append(docs, r.Document())
	}
	return docs, nil
}

func (c *gormCollection) FindOne(ctx context.Context, filter Filter) (models.Document, error) {
	docs, err := c.Find(ctx, filter, FindOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

func (c *gormCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	tx := c.db.WithContext(ctx)
	first := c.scope(tx.Session(&gorm.Session{NewDB: true}), filter).
		Select("id").Order(naturalOrder).Limit(1)

	res := tx.Where("id = (?)", first).Delete(&models.DocumentRecord{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete from %s: %w", c.name, res.Error)
	}
	return res.RowsAffected, nil
}

func (c *gormCollection) UpdateOne(ctx context.Context, filter Filter, set models.Document, upsert bool) (UpdateResult, error) {
	var res UpdateResult
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recs []models.DocumentRecord
		q := c.scope(tx, filter).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Order(naturalOrder).
			Limit(1)
		if err := q.Find(&recs).Error; err != nil {
			return err
		}

		if len(recs) == 0 {
			if !upsert {
				return nil
			}
			id, ok := filter[models.IDField]
			if !ok {
				id = uuid.NewString()
			}
			if err := tx.Create(c.newRecord(id, upsertSeed(filter, set))).Error; err != nil {
				return err
			}
			res.UpsertedCount = 1
			res.UpsertedID = id
			return nil
		}

		res.MatchedCount = 1
		merged, changed := applySet(models.Document(recs[0].Body), set)
		if !changed {
			return nil
		}
		err := tx.Model(&recs[0]).Update("body", datatypes.JSONMap(merged)).Error
		if err != nil {
			return err
		}
		res.ModifiedCount = 1
		return nil
	})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update in %s: %w", c.name, err)
	}
	return res, nil
}

func (c *gormCollection) EstimatedDocumentCount(ctx context.Context) (int64, error) {
	var n int64
	err := c.db.WithContext(ctx).
		Model(&models.DocumentRecord{}).
		Where("collection = ?", c.name).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}
