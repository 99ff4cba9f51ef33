package dto

type CategoryItem struct {
	ID    uint64     `json:"id"`
	Name  string     `json:"name"`
	Tasks []TaskItem `json:"tasks"`
}

// CategoryRef is the shallow shape nested inside a task.
type CategoryRef struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}
