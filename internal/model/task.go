package model

import "github.com/google/uuid"

// Task is a to-do item. Edits replace the whole record keyed by ID.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Note  string `json:"note"`
}

// NewTask creates a task with a fresh ID.
func NewTask(title, note string) Task {
	return Task{
		ID:    uuid.NewString(),
		Title: title,
		Note:  note,
	}
}
