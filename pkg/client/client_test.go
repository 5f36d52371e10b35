package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/hassan-newpage/todo-nextjs/internal/app"
	"github.com/hassan-newpage/todo-nextjs/internal/handlers"
	"github.com/hassan-newpage/todo-nextjs/internal/repo"
	"github.com/hassan-newpage/todo-nextjs/internal/service"
	"github.com/hassan-newpage/todo-nextjs/pkg/client"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the real router over an in-memory repository, so the
// facade is exercised against the actual wire contract.
func newTestServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewTodoService(repo.NewMemoryTodoRepo(), nil)
	app.RegisterTodoRoutes(r.Group("/api"), handlers.NewTodoHandler(svc))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

func TestClientCRUDRoundTrip(t *testing.T) {
	c := newTestServer(t)
	ctx := context.Background()

	list, err := c.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	desc := "2 liters"
	created, err := c.CreateTodo(ctx, client.TodoInput{Title: "Buy milk", Description: &desc})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	got, err := c.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	done := true
	updated, err := c.UpdateTodo(ctx, created.ID, client.TodoPatch{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, created.Title, updated.Title)

	require.NoError(t, c.DeleteTodo(ctx, created.ID))

	_, err = c.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestClientGetUnknownIDIsNotFound(t *testing.T) {
	c := newTestServer(t)

	_, err := c.GetTodo(context.Background(), "b3d2aebe-64bf-4b43-a4ac-36a4e8b53d39")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestClientSurfacesUniformErrorOnFailure(t *testing.T) {
	c := newTestServer(t)

	_, err := c.CreateTodo(context.Background(), client.TodoInput{Title: ""})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create todo")
}

func TestClientDeleteUnknownIDSucceeds(t *testing.T) {
	c := newTestServer(t)

	assert.NoError(t, c.DeleteTodo(context.Background(), "b3d2aebe-64bf-4b43-a4ac-36a4e8b53d39"))
}
