// Package client is a Go facade over the todo HTTP API. Each call is one
// round trip; any non-success status surfaces as a single error, never a
// retry. A 404 on GetTodo is ErrNotFound, everything else is uniform.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned by GetTodo when the id does not exist.
var ErrNotFound = errors.New("todo not found")

// Todo mirrors the API's wire representation of a record.
type Todo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	TaskDate    string    `json:"task_date"`
	TaskTime    *string   `json:"task_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// TodoInput is the body of a create call. Title is the only required field.
type TodoInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	TaskDate    string  `json:"task_date,omitempty"`
	TaskTime    *string `json:"task_time,omitempty"`
}

// TodoPatch is the body of an update call. Nil fields are left unchanged.
type TodoPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	TaskDate    *string `json:"task_date,omitempty"`
	TaskTime    *string `json:"task_time,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var list []Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch todos: %w", err)
	}
	return list, nil
}

func (c *Client) GetTodo(ctx context.Context, id string) (Todo, error) {
	var t Todo
	err := c.do(ctx, http.MethodGet, "/api/todos/"+id, nil, &t)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Todo{}, ErrNotFound
		}
		return Todo{}, fmt.Errorf("failed to fetch todo: %w", err)
	}
	return t, nil
}

func (c *Client) CreateTodo(ctx context.Context, in TodoInput) (Todo, error) {
	var t Todo
	if err := c.do(ctx, http.MethodPost, "/api/todos", in, &t); err != nil {
		return Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}
	return t, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id string, patch TodoPatch) (Todo, error) {
	var t Todo
	if err := c.do(ctx, http.MethodPut, "/api/todos/"+id, patch, &t); err != nil {
		return Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}
	return t, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
