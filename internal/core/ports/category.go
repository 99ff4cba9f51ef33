package ports

import (
	"context"

	"taskforge/internal/core/domain"
)

type CategoryRepository interface {
	ListCategoriesByUser(ctx context.Context, userID uint64) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id uint64) (domain.Category, error)
	ExistsCategoryByID(ctx context.Context, id uint64) (bool, error)
	ExistsCategoryByName(ctx context.Context, userID uint64, name string, excludeID uint64) (bool, error)
	CreateCategory(ctx context.Context, userID uint64, name string) (domain.Category, error)
	RenameCategory(ctx context.Context, id uint64, name string) error
	// DeleteCategoryCascade removes the category and every task referencing
	// it inside a single transaction.
	DeleteCategoryCascade(ctx context.Context, id uint64) error
}

type CategoryService interface {
	ListCategories(ctx context.Context, caller domain.User) ([]domain.Category, error)
	CreateCategory(ctx context.Context, caller domain.User, name string) (domain.Category, error)
	GetCategory(ctx context.Context, caller domain.User, id uint64) (domain.Category, error)
	UpdateCategory(ctx context.Context, caller domain.User, id uint64, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, caller domain.User, id uint64) error
}
