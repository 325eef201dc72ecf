package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

// runCollectionContract exercises the behaviour every backend must share.
// Each subtest gets a fresh, uniquely named collection.
func runCollectionContract(t *testing.T, store Store) {
	ctx := context.Background()
	fresh := func() Collection { return store.Collection("test_" + uuid.NewString()) }

	t.Run("insert assigns distinct ids and discards client id", func(t *testing.T) {
		c := fresh()
		id1, err := c.InsertOne(ctx, models.Document{"title": "Engineer", "_id": "client"})
		require.NoError(t, err)
		id2, err := c.InsertOne(ctx, models.Document{"title": "Engineer"})
		require.NoError(t, err)

		assert.NotEmpty(t, id1)
		assert.NotEqual(t, "client", id1)
		assert.NotEqual(t, id1, id2)

		doc, err := c.FindOne(ctx, Filter{models.IDField: id1})
		require.NoError(t, err)
		assert.Equal(t, id1, doc.ID())
		assert.Equal(t, "Engineer", doc["title"])
	})

	t.Run("find filters on fields and windows in insertion order", func(t *testing.T) {
		c := fresh()
		for _, title := range []string{"a", "b", "c", "d"} {
			_, err := c.InsertOne(ctx, models.Document{"title": title, "email": "owner@x.com"})
			require.NoError(t, err)
		}
		_, err := c.InsertOne(ctx, models.Document{"title": "e", "email": "other@x.com"})
		require.NoError(t, err)

		all, err := c.Find(ctx, nil, FindOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 5)

		owned, err := c.Find(ctx, Filter{"email": "owner@x.com"}, FindOptions{})
		require.NoError(t, err)
		assert.Len(t, owned, 4)

		window, err := c.Find(ctx, Filter{"email": "owner@x.com"}, FindOptions{Skip: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, window, 2)
		assert.Equal(t, "b", window[0]["title"])
		assert.Equal(t, "c", window[1]["title"])

		none, err := c.Find(ctx, Filter{"email": "nobody@x.com"}, FindOptions{})
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		n, err := c.EstimatedDocumentCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	})

	t.Run("filters match string fields only", func(t *testing.T) {
		c := fresh()
		for _, email := range []any{5, true, map[string]any{"v": "5"}, []any{"5"}, nil} {
			_, err := c.InsertOne(ctx, models.Document{"email": email})
			require.NoError(t, err)
		}
		_, err := c.InsertOne(ctx, models.Document{"email": "5"})
		require.NoError(t, err)
		_, err = c.InsertOne(ctx, models.Document{"email": "true"})
		require.NoError(t, err)

		got, err := c.Find(ctx, Filter{"email": "5"}, FindOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "5", got[0]["email"])

		got, err = c.Find(ctx, Filter{"email": "true"}, FindOptions{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "true", got[0]["email"])

		res, err := c.UpdateOne(ctx, Filter{"email": "5"}, models.Document{"seen": true}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
	})

	t.Run("find one miss", func(t *testing.T) {
		_, err := fresh().FindOne(ctx, Filter{models.IDField: uuid.NewString()})
		assert.ErrorIs(t, err, ErrNoDocuments)
	})

	t.Run("delete removes a single document once", func(t *testing.T) {
		c := fresh()
		id, err := c.InsertOne(ctx, models.Document{"title": "x"})
		require.NoError(t, err)

		n, err := c.DeleteOne(ctx, Filter{models.IDField: id})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = c.DeleteOne(ctx, Filter{models.IDField: id})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("upsert creates then merges", func(t *testing.T) {
		c := fresh()
		filter := Filter{"email": "a@x.com"}

		res, err := c.UpdateOne(ctx, filter, models.Document{"name": "A", "city": "Dhaka"}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, int64(1), res.UpsertedCount)
		require.NotEmpty(t, res.UpsertedID)

		doc, err := c.FindOne(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, res.UpsertedID, doc.ID())
		assert.Equal(t, models.Document{"_id": res.UpsertedID, "email": "a@x.com", "name": "A", "city": "Dhaka"}, doc)

		res, err = c.UpdateOne(ctx, filter, models.Document{"name": "B"}, true)
		require.NoError(t, err)
		assert.Equal(t, UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

		doc, err = c.FindOne(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, "B", doc["name"])
		assert.Equal(t, "Dhaka", doc["city"])
		assert.Equal(t, "a@x.com", doc["email"])

		res, err = c.UpdateOne(ctx, filter, models.Document{"name": "B"}, true)
		require.NoError(t, err)
		assert.Equal(t, UpdateResult{MatchedCount: 1}, res)

		n, err := c.EstimatedDocumentCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("update without upsert leaves missing documents alone", func(t *testing.T) {
		c := fresh()
		res, err := c.UpdateOne(ctx, Filter{"email": "ghost@x.com"}, models.Document{"name": "G"}, false)
		require.NoError(t, err)
		assert.Equal(t, UpdateResult{}, res)

		n, err := c.EstimatedDocumentCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
