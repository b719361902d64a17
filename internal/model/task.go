package model

// Task is the domain model for a todo entry.
// Identity is positional: a task is addressed by its 1-based index at command time.
type Task struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}
