package repo

import (
	"context"

	dom "github.com/hassan-newpage/todo-nextjs/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the data-access contract: five operations against the todos
// table. Every call is a direct round trip to the store, no buffering.
type TodoRepo interface {
	List(ctx context.Context) ([]dom.Todo, error)
	GetByID(ctx context.Context, id string) (dom.Todo, error)
	Insert(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Update(ctx context.Context, id string, t dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id string) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

// Columns are selected with ::text casts so task_date/task_time stay
// string-encoded ("2006-01-02" / "15:04:05") all the way to the wire.
const todoColumns = `id::text, title, description, completed, task_date::text, task_time::text, created_at`

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed,
			&t.TaskDate, &t.TaskTime, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1::uuid`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.TaskDate, &t.TaskTime, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) Insert(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description, completed, task_date, task_time)
		VALUES ($1, $2, $3, $4::date, $5::time)
		RETURNING ` + todoColumns
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.Completed, t.TaskDate, t.TaskTime).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed,
		&out.TaskDate, &out.TaskTime, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) Update(ctx context.Context, id string, t dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, description = $3, completed = $4, task_date = $5::date, task_time = $6::time
		WHERE id = $1::uuid
		RETURNING ` + todoColumns
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, id, t.Title, t.Description, t.Completed, t.TaskDate, t.TaskTime).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed,
		&out.TaskDate, &out.TaskTime, &out.CreatedAt,
	)
	return out, err
}

// Delete removes the row. Deleting an id that does not exist is not an error.
func (r *PGTodoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1::uuid`, id)
	return err
}
