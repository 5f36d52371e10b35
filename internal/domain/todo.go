package domain

import "time"

// Todo is the single task entity. It does not depend on Gin, Postgres or Redis.
// ID and CreatedAt are assigned by the store and never change afterwards.
type Todo struct {
	ID          string
	Title       string
	Description *string
	Completed   bool
	TaskDate    string  // "2006-01-02"
	TaskTime    *string // "15:04:05", nil if unset
	CreatedAt   time.Time
}
