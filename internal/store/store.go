package store

import (
	"fmt"
	"task-tracker/internal/domain"
)

// TaskStore persists the whole task collection as a single unit.
type TaskStore interface {
	EnsureInitialized() error
	Load() ([]domain.Task, error)
	Save(tasks []domain.Task) error
}

// StorageError reports a failed read, write or decode of the persisted collection.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
