package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TaskDate parses task_date from JSON as "2006-01-02". Empty string and null
// are treated as unset, so the service can default to the current date.
type TaskDate struct{ s string }

func (d *TaskDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.s = ""
		return nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("task_date: use date (YYYY-MM-DD)")
	}
	d.s = parsed.Format("2006-01-02")
	return nil
}

func (d TaskDate) String() string { return d.s }
func (d TaskDate) IsZero() bool   { return d.s == "" }

// TaskTime parses task_time from JSON as "HH:MM" or "HH:MM:SS", normalized to
// "HH:MM:SS". It remembers whether the field was present at all, so a PUT can
// distinguish "leave unchanged" (absent) from "clear" (null).
type TaskTime struct {
	set bool
	v   *string
}

func (t *TaskTime) UnmarshalJSON(data []byte) error {
	t.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		t.v = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			out := parsed.Format("15:04:05")
			t.v = &out
			return nil
		}
	}
	return fmt.Errorf("task_time: use time (HH:MM or HH:MM:SS)")
}

// Set reports whether the field appeared in the JSON body.
func (t TaskTime) Set() bool { return t.set }

// Ptr returns *string for use in service/domain. nil means cleared/unset.
func (t TaskTime) Ptr() *string { return t.v }

// NullString is a nullable text field that remembers presence, like TaskTime
// but without format validation. Used for description.
type NullString struct {
	set bool
	v   *string
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.set = true
	return json.Unmarshal(data, &n.v)
}

func (n NullString) Set() bool    { return n.set }
func (n NullString) Ptr() *string { return n.v }

type CreateTodoRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description NullString `json:"description"`
	TaskDate    TaskDate   `json:"task_date"` // optional: defaults to today
	TaskTime    TaskTime   `json:"task_time"` // optional
}

type UpdateTodoRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=200"`
	Description NullString `json:"description"` // absent = keep, null = clear
	Completed   *bool      `json:"completed"`
	TaskDate    *TaskDate  `json:"task_date"` // nil = keep
	TaskTime    TaskTime   `json:"task_time"` // absent = keep, null = clear
}

type TodoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	TaskDate    string    `json:"task_date"`
	TaskTime    *string   `json:"task_time"`
	CreatedAt   time.Time `json:"created_at"`
}

// DeleteResponse is the body of a successful DELETE.
type DeleteResponse struct {
	Success bool `json:"success"`
}
