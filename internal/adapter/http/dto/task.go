package dto

type TaskItem struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	DueDate     *string      `json:"due_date"`
	Status      string       `json:"status"`
	Category    *CategoryRef `json:"category"`
}

// CreateTaskRequest carries no status field: new tasks always start pending.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	CategoryID  *uint64 `json:"category_id"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	CategoryID  *uint64 `json:"category_id"`
}
