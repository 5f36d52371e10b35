package optimistic

import (
	"strings"
	"testing"
	"time"

	"github.com/hassan-newpage/todo-nextjs/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverTodo(id, title string, completed bool) client.Todo {
	return client.Todo{
		ID:        id,
		Title:     title,
		Completed: completed,
		TaskDate:  "2026-08-28",
		CreatedAt: time.Now().UTC(),
	}
}

func TestStageCreateShowsPendingEntryFirst(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "existing", false)})

	m := s.StageCreate(client.TodoInput{Title: "new task"})
	require.NotNil(t, m)
	assert.Equal(t, Pending, m.Status())
	assert.True(t, strings.HasPrefix(m.TodoID(), "temp-"))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "new task", list[0].Title)
	assert.NotEmpty(t, list[0].TaskDate, "staged create defaults task_date")
}

func TestCommitCreateSwapsTempForServerRecord(t *testing.T) {
	s := NewState()
	m := s.StageCreate(client.TodoInput{Title: "new task"})

	server := serverTodo("real-id", "new task", false)
	s.Commit(m, &server)

	assert.Equal(t, Committed, m.Status())
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "real-id", list[0].ID)
}

func TestRollbackCreateRemovesPendingEntry(t *testing.T) {
	s := NewState()
	m := s.StageCreate(client.TodoInput{Title: "new task"})

	s.Rollback(m)

	assert.Equal(t, RolledBack, m.Status())
	assert.Empty(t, s.List())
}

func TestStageUpdateTogglesViewThenRollbackReverts(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "task", false)})

	done := true
	m := s.StageUpdate("a", client.TodoPatch{Completed: &done})
	require.NotNil(t, m)
	assert.True(t, s.List()[0].Completed, "optimistic view applies before the call resolves")

	s.Rollback(m)
	assert.False(t, s.List()[0].Completed, "rollback reverts the speculative change")
}

func TestStageDeleteHidesThenCommitRemoves(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "task", false), serverTodo("b", "other", false)})

	m := s.StageDelete("a")
	require.NotNil(t, m)
	require.Len(t, s.List(), 1)

	s.Commit(m, nil)
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestRollbackDeleteRestoresEntry(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "task", false)})

	m := s.StageDelete("a")
	require.Len(t, s.List(), 0)

	s.Rollback(m)
	require.Len(t, s.List(), 1)
}

func TestOverlappingUpdatesLastResponseWins(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "task", false)})

	done, undone := true, false
	m1 := s.StageUpdate("a", client.TodoPatch{Completed: &done})
	m2 := s.StageUpdate("a", client.TodoPatch{Completed: &undone})

	// Responses arrive in call order; the later commit settles the base.
	first := serverTodo("a", "task", true)
	s.Commit(m1, &first)
	second := serverTodo("a", "task", false)
	s.Commit(m2, &second)

	list := s.List()
	require.Len(t, list, 1)
	assert.False(t, list[0].Completed)
}

func TestCommitIsTerminal(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{serverTodo("a", "task", false)})

	done := true
	m := s.StageUpdate("a", client.TodoPatch{Completed: &done})
	server := serverTodo("a", "task", true)
	s.Commit(m, &server)
	s.Rollback(m) // no-op

	assert.Equal(t, Committed, m.Status())
	assert.True(t, s.List()[0].Completed)
}

func TestPendingCompletedPartition(t *testing.T) {
	s := NewState()
	s.Replace([]client.Todo{
		serverTodo("a", "open", false),
		serverTodo("b", "done", true),
		serverTodo("c", "also open", false),
	})

	assert.Len(t, s.Pending(), 2)
	assert.Len(t, s.Completed(), 1)
	assert.Equal(t, "done", s.Completed()[0].Title)
}

func TestReplaceKeepsPendingMutationsApplied(t *testing.T) {
	s := NewState()
	m := s.StageCreate(client.TodoInput{Title: "in flight"})

	s.Replace([]client.Todo{serverTodo("a", "from server", false)})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "in flight", list[0].Title)
	assert.Equal(t, Pending, m.Status())
}
