package memory

import (
	"sync"
	"task-tracker/internal/domain"
)

// TaskStore holds the collection in process memory. Load and Save copy, so
// callers only change stored state through Save.
type TaskStore struct {
	mu          sync.RWMutex
	initialized bool
	saves       int
	tasks       []domain.Task
}

func New(tasks ...domain.Task) *TaskStore {
	ts := &TaskStore{}
	if len(tasks) > 0 {
		ts.tasks = clone(tasks)
		ts.initialized = true
	}
	return ts
}

func (ts *TaskStore) EnsureInitialized() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if !ts.initialized {
		ts.tasks = []domain.Task{}
		ts.initialized = true
	}
	return nil
}

func (ts *TaskStore) Load() ([]domain.Task, error) {
	if err := ts.EnsureInitialized(); err != nil {
		return nil, err
	}

	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return clone(ts.tasks), nil
}

func (ts *TaskStore) Save(tasks []domain.Task) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = clone(tasks)
	ts.initialized = true
	ts.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (ts *TaskStore) Saves() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.saves
}

func clone(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
