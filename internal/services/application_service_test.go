package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/models"
)

func newApplicationService(t *testing.T, emptyListNotFound bool) *ApplicationService {
	t.Helper()
	return NewApplicationService(ApplicationServiceOptions{
		Applications:      database.NewMemoryStore().Collection(ApplicationsCollection),
		EmptyListNotFound: emptyListNotFound,
	})
}

func TestApplicationService_ApplyInjectsEmail(t *testing.T) {
	t.Parallel()
	svc := newApplicationService(t, true)
	ctx := context.Background()

	id, err := svc.Apply(ctx, "a@x.com", models.Document{"jobId": "job-1", "email": "spoofed@x.com"})
	require.NoError(t, err)

	apps, err := svc.ListByApplicant(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, id, apps[0].ID())
	assert.Equal(t, "a@x.com", apps[0]["email"])
	assert.Equal(t, "job-1", apps[0]["jobId"])

	_, err = svc.ListByApplicant(ctx, "spoofed@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplicationService_RepeatSubmissionsAreKept(t *testing.T) {
	t.Parallel()
	svc := newApplicationService(t, true)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Apply(ctx, "a@x.com", models.Document{"jobId": "job-1"})
		require.NoError(t, err)
	}

	apps, err := svc.ListByJob(ctx, "job-1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestApplicationService_RequiredParams(t *testing.T) {
	t.Parallel()
	svc := newApplicationService(t, true)
	ctx := context.Background()
	var pe *ParamError

	_, err := svc.Apply(ctx, "", models.Document{})
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "email", pe.Param)

	_, err = svc.ListByApplicant(ctx, " ")
	require.ErrorAs(t, err, &pe)

	_, err = svc.ListByJob(ctx, "")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "JobId path parameter is required", pe.Error())
}

func TestApplicationService_EmptyListPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strict := newApplicationService(t, true)
	_, err := strict.ListByApplicant(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = strict.ListByJob(ctx, "job-404")
	assert.ErrorIs(t, err, ErrNotFound)

	lenient := newApplicationService(t, false)
	apps, err := lenient.ListByApplicant(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.Empty(t, apps)
	apps, err = lenient.ListByJob(ctx, "job-404")
	require.NoError(t, err)
	assert.Empty(t, apps)
}
