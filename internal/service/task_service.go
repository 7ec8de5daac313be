package service

import (
	"fmt"
	"io"
	"strings"
	"task-tracker/internal/domain"
	"task-tracker/internal/store"
	"time"

	"github.com/sirupsen/logrus"
)

// TaskService runs one load-mutate-save cycle per operation against a
// store that is read and written as a whole.
type TaskService struct {
	store store.TaskStore
	log   logrus.FieldLogger
	now   func() time.Time
}

func New(taskStore store.TaskStore, log logrus.FieldLogger) (*TaskService, error) {
	if taskStore == nil {
		return nil, ErrStoreNil
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &TaskService{store: taskStore, log: log, now: time.Now}, nil
}

// NextID returns 1 for an empty collection, else the highest id plus one.
func NextID(tasks []domain.Task) int64 {
	var maxID int64
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

func (s *TaskService) AddTask(name, description string, status domain.TaskStatus) (domain.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Task{}, ErrNameRequired
	}
	if description == "" {
		description = domain.DefaultDescription
	}
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.IsValid() {
		return domain.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	tasks, err := s.load()
	if err != nil {
		return domain.Task{}, err
	}

	now := domain.NewTimestamp(s.now())
	task := domain.Task{
		ID:          NextID(tasks),
		Name:        name,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks = append(tasks, task)
	if err := s.save(tasks); err != nil {
		return domain.Task{}, err
	}

	s.log.WithFields(logrus.Fields{"task_id": task.ID, "status": task.Status}).Debug("task added")
	return task, nil
}

// UpdateTask overwrites only the supplied fields. The name is trimmed as in
// AddTask, and a blank name counts as not supplied. An unrecognized status is
// ignored rather than rejected; UpdatedAt is refreshed either way.
func (s *TaskService) UpdateTask(id int64, patch domain.TaskPatch) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	tasks, err := s.load()
	if err != nil {
		return domain.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return domain.Task{}, ErrNotFound
	}

	task := &tasks[i]
	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" {
			task.Name = name
		}
	}
	if patch.Description != nil && *patch.Description != "" {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if patch.Status.IsValid() {
			task.Status = *patch.Status
		} else {
			s.log.WithFields(logrus.Fields{"task_id": id, "status": *patch.Status}).Debug("ignoring unrecognized status")
		}
	}
	task.UpdatedAt = domain.NewTimestamp(s.now())

	if err := s.save(tasks); err != nil {
		return domain.Task{}, err
	}

	s.log.WithFields(logrus.Fields{"task_id": id, "status": task.Status}).Debug("task updated")
	return *task, nil
}

// DeleteTask reports whether a task was removed. The collection is written
// back even when nothing matched.
func (s *TaskService) DeleteTask(id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidID
	}

	tasks, err := s.load()
	if err != nil {
		return false, err
	}

	kept := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(tasks)

	if err := s.save(kept); err != nil {
		return false, err
	}

	s.log.WithFields(logrus.Fields{"task_id": id, "removed": removed}).Debug("task deleted")
	return removed, nil
}

// SetStatus assigns status without checking it against the enum.
func (s *TaskService) SetStatus(id int64, status domain.TaskStatus) (domain.Task, error) {
	if id <= 0 {
		return domain.Task{}, ErrInvalidID
	}

	tasks, err := s.load()
	if err != nil {
		return domain.Task{}, err
	}

	i := indexOf(tasks, id)
	if i < 0 {
		return domain.Task{}, ErrNotFound
	}

	tasks[i].Status = status
	tasks[i].UpdatedAt = domain.NewTimestamp(s.now())

	if err := s.save(tasks); err != nil {
		return domain.Task{}, err
	}

	s.log.WithFields(logrus.Fields{"task_id": id, "status": status}).Debug("task status set")
	return tasks[i], nil
}

// ListTasks returns the tasks whose status equals filter verbatim, or all
// tasks when filter is empty.
func (s *TaskService) ListTasks(filter string) ([]domain.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return tasks, nil
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if string(t.Status) == filter {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TaskService) load() ([]domain.Task, error) {
	tasks, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) save(tasks []domain.Task) error {
	if err := s.store.Save(tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func indexOf(tasks []domain.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
