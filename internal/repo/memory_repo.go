package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/hassan-newpage/todo-nextjs/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MemoryTodoRepo is an in-memory TodoRepo used by tests. It mimics the
// Postgres adapter's contract: store-assigned id/created_at, created_at
// ordering, pgx.ErrNoRows on missing rows, idempotent delete.
type MemoryTodoRepo struct {
	mu    sync.Mutex
	todos map[string]dom.Todo
	seq   int
}

func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{todos: map[string]dom.Todo{}}
}

func (r *MemoryTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *MemoryTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemoryTodoRepo) Insert(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	// Monotonic created_at so that back-to-back inserts still order strictly.
	r.seq++
	t.CreatedAt = time.Now().UTC().Add(time.Duration(r.seq) * time.Microsecond)
	r.todos[t.ID] = t
	return t, nil
}

func (r *MemoryTodoRepo) Update(ctx context.Context, id string, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	r.todos[id] = t
	return t, nil
}

func (r *MemoryTodoRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.todos, id)
	return nil
}
