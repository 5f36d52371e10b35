package service

import (
	"context"
	"testing"
	"time"

	"github.com/hassan-newpage/todo-nextjs/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *TodoService {
	return NewTodoService(repo.NewMemoryTodoRepo(), nil)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateAssignsIDAndDefaultsDate(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Buy milk", nil, "", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)
	assert.Nil(t, created.Description)
	assert.Nil(t, created.TaskTime)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), created.TaskDate)
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), "   ", nil, "", nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Write report", strPtr("quarterly"), "2026-09-01", strPtr("14:00:00"))
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := newService()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Create(context.Background(), title, nil, "", nil)
		require.NoError(t, err)
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "first", list[2].Title)
	assert.True(t, list[0].CreatedAt.After(list[2].CreatedAt))
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetByID(context.Background(), "b3d2aebe-64bf-4b43-a4ac-36a4e8b53d39")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateMergesOnlyGivenFields(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Buy milk", strPtr("2 liters"), "2026-03-01", strPtr("08:00:00"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, TodoPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.TaskDate, updated.TaskDate)
	assert.Equal(t, created.TaskTime, updated.TaskTime)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateClearsNullableFields(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Buy milk", strPtr("2 liters"), "", strPtr("08:00:00"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, TodoPatch{
		DescriptionSet: true,
		TaskTimeSet:    true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.TaskTime)
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Buy milk", nil, "", nil)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, TodoPatch{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestUpdateMissingIDSignalsNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), "b3d2aebe-64bf-4b43-a4ac-36a4e8b53d39", TodoPatch{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newService()

	created, err := svc.Create(context.Background(), "Buy milk", nil, "", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
