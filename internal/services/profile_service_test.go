package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	return NewProfileService(database.NewMemoryStore().Collection(UsersCollection))
}

func TestProfileService_CreateAndGet(t *testing.T) {
	t.Parallel()
	svc := newProfileService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.Document{"email": "a@x.com", "name": "A"})
	require.NoError(t, err)

	user, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID())
	assert.Equal(t, "A", user["name"])
}

func TestProfileService_GetByEmail_MissIsNil(t *testing.T) {
	t.Parallel()
	user, err := newProfileService(t).GetByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProfileService_RequiresEmail(t *testing.T) {
	t.Parallel()
	svc := newProfileService(t)
	ctx := context.Background()

	_, err := svc.GetByEmail(ctx, "")
	var pe *ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Email query parameter is required", pe.Error())

	_, err = svc.UpsertByEmail(ctx, "", models.Document{"name": "A"})
	assert.ErrorAs(t, err, &pe)
}

func TestProfileService_UpsertByEmail(t *testing.T) {
	t.Parallel()
	svc := newProfileService(t)
	ctx := context.Background()

	res, err := svc.UpsertByEmail(ctx, "a@x.com", models.Document{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)

	user, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.Document{"_id": res.UpsertedID, "email": "a@x.com", "name": "A"}, user)

	res, err = svc.UpsertByEmail(ctx, "a@x.com", models.Document{"name": "B", "title": "Dr"})
	require.NoError(t, err)
	assert.Equal(t, database.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	user, err = svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "B", user["name"])
	assert.Equal(t, "Dr", user["title"])
	assert.Equal(t, "a@x.com", user["email"])
}

func TestProfileService_UpsertStripsIdentityFields(t *testing.T) {
	t.Parallel()
	svc := newProfileService(t)
	ctx := context.Background()

	first, err := svc.UpsertByEmail(ctx, "a@x.com", models.Document{
		"_id":   "forged",
		"email": "other@x.com",
		"name":  "A",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "forged", first.UpsertedID)

	user, err := svc.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.UpsertedID, user.ID())
	assert.Equal(t, "a@x.com", user["email"])

	moved, err := svc.GetByEmail(ctx, "other@x.com")
	require.NoError(t, err)
	assert.Nil(t, moved)

	// A matching email in the patch is harmless.
	res, err := svc.UpsertByEmail(ctx, "a@x.com", models.Document{"email": "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, database.UpdateResult{MatchedCount: 1}, res)
}

func TestProfileService_UpsertDoesNotMutatePatch(t *testing.T) {
	t.Parallel()
	patch := models.Document{"_id": "x", "email": "other@x.com", "name": "A"}

	_, err := newProfileService(t).UpsertByEmail(context.Background(), "a@x.com", patch)
	require.NoError(t, err)
	assert.Equal(t, models.Document{"_id": "x", "email": "other@x.com", "name": "A"}, patch)
}
