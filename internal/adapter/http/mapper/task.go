package mapper

import (
	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
)

const dueDateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:     task.ID,
		Title:  task.Title,
		Status: string(task.Status),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dueDateLayout)
		item.DueDate = &value
	}

	if task.Category != nil {
		item.Category = &dto.CategoryRef{
			ID:   task.Category.ID,
			Name: task.Category.Name,
		}
	}

	return item
}
