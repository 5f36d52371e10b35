package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hassan-newpage/todo-nextjs/internal/cache"
	dom "github.com/hassan-newpage/todo-nextjs/internal/domain"
	"github.com/hassan-newpage/todo-nextjs/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("todo not found")
	ErrEmptyTitle = errors.New("title must not be empty")
)

// TodoPatch carries the fields of a partial update. Nil pointer = keep the
// stored value. DescriptionSet/TaskTimeSet distinguish "field absent" from
// "field explicitly null" for the two nullable columns.
type TodoPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
	TaskDate       *string
	TaskTime       *string
	TaskTimeSet    bool
}

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create inserts a new todo. An empty taskDate defaults to the current date.
func (s *TodoService) Create(ctx context.Context, title string, description *string, taskDate string, taskTime *string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}
	if taskDate == "" {
		taskDate = time.Now().UTC().Format("2006-01-02")
	}

	t, err := s.repo.Insert(ctx, dom.Todo{
		Title:       title,
		Description: description,
		TaskDate:    taskDate,
		TaskTime:    taskTime,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update merges the patch into the stored record. A missing id signals
// ErrNotFound.
func (s *TodoService) Update(ctx context.Context, id string, patch TodoPatch) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}

	merged := existing
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
		merged.Title = title
	}
	if patch.DescriptionSet {
		merged.Description = patch.Description
	}
	if patch.Completed != nil {
		merged.Completed = *patch.Completed
	}
	if patch.TaskDate != nil {
		merged.TaskDate = *patch.TaskDate
	}
	if patch.TaskTimeSet {
		merged.TaskTime = patch.TaskTime
	}

	t, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Delete removes the todo. Deleting an id that no longer exists succeeds.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
