package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/activities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivityService(t *testing.T) *ActivityService {
	t.Helper()
	repo := activities.NewMemoryRepository()
	require.NoError(t, repo.Seed(context.Background(), activities.DefaultSeed()))
	return NewActivityService(repo, logging.NewNopLogger())
}

func TestActivityService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestActivityService(t)

	_, err := s.Update(ctx, 2, models.ActivityPatch{Status: models.StatusCompleted})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Activity{
		ID: 2, Type: models.ActivityTest, Title: "Payment Integration Test", Time: "5 hours ago", Status: models.StatusCompleted,
	}, list[1])
}

func TestActivityService_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestActivityService(t)

	_, err := s.Update(ctx, 999, models.ActivityPatch{Status: models.StatusCompleted})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.Update(ctx, 1, models.ActivityPatch{Status: "exploded"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Update(ctx, 1, models.ActivityPatch{Type: "deploy"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, activities.DefaultSeed(), list)
}

func TestActivityService_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestActivityService(t)

	require.NoError(t, s.Delete(ctx, 3))
	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	assert.ErrorIs(t, s.Delete(ctx, 3), common.ErrorNotFound)
}

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()
	s := newTestActivityService(t)

	a, err := s.Create(ctx, models.Activity{Type: models.ActivityCreate, Title: "Checkout Flow", Status: models.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(5), a.ID)
	assert.Equal(t, DefaultActivityTime, a.Time)

	_, err = s.Create(ctx, models.Activity{Type: models.ActivityCreate, Status: models.StatusPending})
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Create(ctx, models.Activity{Type: "bogus", Title: "x", Status: models.StatusPending})
	assert.ErrorIs(t, err, common.ErrorValidation)
}
