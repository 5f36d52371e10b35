// Package optimistic keeps the todo list a UI shows while mutations are in
// flight. The authoritative list is always server-driven: callers Replace the
// base with whatever the server returned, stage a mutation before issuing the
// call, then Commit it with the canonical record or Rollback on failure.
// Each in-flight mutation is a tagged value (pending, committed, rolled back)
// rather than an ad-hoc splice of a shared slice, and overlapping mutations
// are independent: the last response to arrive wins.
package optimistic

import (
	"sync"
	"time"

	"github.com/hassan-newpage/todo-nextjs/pkg/client"

	"github.com/google/uuid"
)

type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

type Status int

const (
	Pending Status = iota
	Committed
	RolledBack
)

// Mutation is one in-flight change. It stays Pending until the server
// responds; Commit and Rollback are terminal.
type Mutation struct {
	id     string
	op     Op
	todoID string
	staged client.Todo
	status Status
}

// TodoID returns the id of the record the mutation touches. For creates this
// is a temporary "temp-" id until the commit swaps in the server record.
func (m *Mutation) TodoID() string { return m.todoID }

func (m *Mutation) Op() Op { return m.op }

func (m *Mutation) Status() Status { return m.status }

// State is the presentation layer's view of the list: a server-confirmed
// base plus pending mutations applied on top, newest creates first.
type State struct {
	mu   sync.Mutex
	base []client.Todo
	muts []*Mutation
}

func NewState() *State {
	return &State{}
}

// Replace swaps the authoritative base list, e.g. after a fresh fetch.
// Pending mutations stay applied on top.
func (s *State) Replace(list []client.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = append([]client.Todo(nil), list...)
}

// StageCreate registers a pending insert and returns its mutation. The staged
// record carries a temporary id until the server assigns the real one.
func (s *State) StageCreate(in client.TodoInput) *Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	taskDate := in.TaskDate
	if taskDate == "" {
		taskDate = time.Now().UTC().Format("2006-01-02")
	}
	tempID := "temp-" + uuid.NewString()
	m := &Mutation{
		id:     uuid.NewString(),
		op:     OpCreate,
		todoID: tempID,
		staged: client.Todo{
			ID:          tempID,
			Title:       in.Title,
			Description: in.Description,
			TaskDate:    taskDate,
			TaskTime:    in.TaskTime,
			CreatedAt:   time.Now().UTC(),
		},
	}
	s.muts = append(s.muts, m)
	return m
}

// StageUpdate registers a pending field merge against the current view of id.
// Returns nil if no such record is visible.
func (s *State) StageUpdate(id string, patch client.TodoPatch) *Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.viewLocked(id)
	if !ok {
		return nil
	}
	m := &Mutation{
		id:     uuid.NewString(),
		op:     OpUpdate,
		todoID: id,
		staged: applyPatch(cur, patch),
	}
	s.muts = append(s.muts, m)
	return m
}

// StageDelete registers a pending removal. Returns nil if the record is not
// visible.
func (s *State) StageDelete(id string) *Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.viewLocked(id)
	if !ok {
		return nil
	}
	m := &Mutation{
		id:     uuid.NewString(),
		op:     OpDelete,
		todoID: id,
		staged: cur,
	}
	s.muts = append(s.muts, m)
	return m
}

// Commit resolves a pending mutation with the canonical server record
// (nil for deletes) and folds it into the base list.
func (s *State) Commit(m *Mutation, server *client.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.status != Pending {
		return
	}
	m.status = Committed
	s.removeLocked(m)

	switch m.op {
	case OpCreate:
		if server != nil {
			s.base = append([]client.Todo{*server}, s.base...)
		}
	case OpUpdate:
		if server != nil {
			for i := range s.base {
				if s.base[i].ID == m.todoID {
					s.base[i] = *server
					return
				}
			}
		}
	case OpDelete:
		for i := range s.base {
			if s.base[i].ID == m.todoID {
				s.base = append(s.base[:i], s.base[i+1:]...)
				return
			}
		}
	}
}

// Rollback discards a pending mutation, reverting its speculative effect.
func (s *State) Rollback(m *Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.status != Pending {
		return
	}
	m.status = RolledBack
	s.removeLocked(m)
}

// List returns the list as the UI should render it: base with pending
// mutations applied, in stage order.
func (s *State) List() []client.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked()
}

// Pending returns visible todos that are not completed.
func (s *State) Pending() []client.Todo {
	return s.filter(func(t client.Todo) bool { return !t.Completed })
}

// Completed returns visible todos that are completed.
func (s *State) Completed() []client.Todo {
	return s.filter(func(t client.Todo) bool { return t.Completed })
}

func (s *State) filter(keep func(client.Todo) bool) []client.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []client.Todo
	for _, t := range s.listLocked() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *State) listLocked() []client.Todo {
	list := append([]client.Todo(nil), s.base...)
	for _, m := range s.muts {
		switch m.op {
		case OpCreate:
			list = append([]client.Todo{m.staged}, list...)
		case OpUpdate:
			for i := range list {
				if list[i].ID == m.todoID {
					list[i] = m.staged
				}
			}
		case OpDelete:
			for i := range list {
				if list[i].ID == m.todoID {
					list = append(list[:i], list[i+1:]...)
					break
				}
			}
		}
	}
	return list
}

func (s *State) viewLocked(id string) (client.Todo, bool) {
	for _, t := range s.listLocked() {
		if t.ID == id {
			return t, true
		}
	}
	return client.Todo{}, false
}

func (s *State) removeLocked(m *Mutation) {
	for i := range s.muts {
		if s.muts[i] == m {
			s.muts = append(s.muts[:i], s.muts[i+1:]...)
			return
		}
	}
}

func applyPatch(t client.Todo, p client.TodoPatch) client.Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.TaskDate != nil {
		t.TaskDate = *p.TaskDate
	}
	if p.TaskTime != nil {
		t.TaskTime = p.TaskTime
	}
	return t
}
