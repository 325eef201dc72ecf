package models

import (
	"time"

	"gorm.io/datatypes"
)

// IDField is the key under which a document's identity is exposed.
const IDField = "_id"

// Document is a schemaless JSON object as it travels through the API.
// Jobs, user profiles and job applications are all documents.
type Document map[string]any

// ID returns the store-assigned identity, or "" if the document has none.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Clone returns a deep copy so callers can't mutate stored state.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = CloneValue(v)
	}
	return out
}

// WithoutID returns a copy of the document with _id removed.
func (d Document) WithoutID() Document {
	out := d.Clone()
	if out == nil {
		out = Document{}
	}
	delete(out, IDField)
	return out
}

// CloneValue deep-copies JSON maps and arrays; scalars are returned as-is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Document(t).Clone())
	case Document:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = CloneValue(e)
		}
		return out
	default:
		return v
	}
}

// DocumentRecord is how a document is persisted in PostgreSQL. Every
// collection shares the documents table; Collection tells them apart.
type DocumentRecord struct {
	ID         string            `gorm:"primaryKey;type:varchar(36)"`
	Collection string            `gorm:"index;not null"`
	Body       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `gorm:"index"`
	UpdatedAt  time.Time
}

func (DocumentRecord) TableName() string {
	return "documents"
}

// Document returns the stored body with its identity attached.
func (r DocumentRecord) Document() Document {
	doc := Document(map[string]any(r.Body)).Clone()
	if doc == nil {
		doc = Document{}
	}
	doc[IDField] = r.ID
	return doc
}
