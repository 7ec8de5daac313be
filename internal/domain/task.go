package domain

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
)

// DefaultDescription is stored when a task is created without a description.
const DefaultDescription = "no description"

// Statuses lists the recognized statuses in display order.
var Statuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Task field order is the on-disk field order.
type Task struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`

	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// TaskPatch carries the fields of a partial update. Nil means "not supplied".
type TaskPatch struct {
	Name        *string
	Description *string
	Status      *TaskStatus
}
