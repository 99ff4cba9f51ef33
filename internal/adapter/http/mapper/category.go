package mapper

import (
	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.CategoryItem {
	items := make([]dto.CategoryItem, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.CategoryItem {
	return dto.CategoryItem{
		ID:    category.ID,
		Name:  category.Name,
		Tasks: ToTaskItems(category.Tasks),
	}
}
