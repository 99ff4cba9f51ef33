package ports

import (
	"context"

	"taskforge/internal/core/domain"
)

type TaskRepository interface {
	ListTasksByUser(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTaskByID(ctx context.Context, id uint64) (domain.Task, error)
	ExistsTaskByTitle(ctx context.Context, userID uint64, title string, excludeID uint64) (bool, error)
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, caller domain.User) ([]domain.Task, error)
	CreateTask(ctx context.Context, caller domain.User, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, caller domain.User, id uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, caller domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, caller domain.User, id uint64) error
}
