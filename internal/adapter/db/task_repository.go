package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
)

const (
	listTasksByUserQuery = `
SELECT
  t.*,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.user_id = ?
ORDER BY t.id;
`

	getTaskByIDQuery = `
SELECT
  t.*,
  c.name AS category_name
FROM tasks t
LEFT JOIN categories c ON c.id = t.category_id
WHERE t.id = ?;
`

	existsTaskByTitleQuery = `
SELECT EXISTS (
  SELECT 1 FROM tasks
  WHERE user_id = ? AND title = ? AND id <> ?
);
`

	insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, due_date, status, category_id)
VALUES (?, ?, ?, ?, ?, ?);
`

	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due_date = ?, status = ?, category_id = ?
WHERE id = ?;
`

	deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID           uint64         `db:"id"`
	UserID       uint64         `db:"user_id"`
	Title        string         `db:"title"`
	Description  sql.NullString `db:"description"`
	DueDate      sql.NullTime   `db:"due_date"`
	Status       string         `db:"status"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	CategoryName sql.NullString `db:"category_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasksByUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ExistsTaskByTitle(ctx context.Context, userID uint64, title string, excludeID uint64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsTaskByTitleQuery, userID, title, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		userID,
		input.Title,
		input.Description,
		input.DueDate,
		string(domain.TaskStatusPending),
		input.CategoryID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Task{}, domain.ErrTaskTitleTaken
		}
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}
	return r.GetTaskByID(ctx, uint64(id))
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		task.CategoryID,
		task.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Task{}, domain.ErrTaskTitleTaken
		}
		return domain.Task{}, err
	}
	return r.GetTaskByID(ctx, task.ID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CategoryID.Valid {
		value := uint64(row.CategoryID.Int64)
		task.CategoryID = &value

		if row.CategoryName.Valid {
			task.Category = &domain.Category{
				ID:     value,
				UserID: row.UserID,
				Name:   row.CategoryName.String,
			}
		}
	}

	return task
}
