package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether the status is one of the three known values.
// There is no transition graph: any status may be set from any other.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Status      TaskStatus
	CategoryID  *uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    *Category
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	CategoryID  *uint64
}

// UpdateTaskInput carries a partial field set. The *Set flags distinguish
// "field absent from the payload" from "field explicitly set to null".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *time.Time
	DueDateSet     bool
	Status         *TaskStatus
	CategoryID     *uint64
	CategoryIDSet  bool
}
