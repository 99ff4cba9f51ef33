package service

import (
	"context"
	"errors"
	"strings"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

type CategoryService struct {
	categories ports.CategoryRepository
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) ListCategories(ctx context.Context, caller domain.User) ([]domain.Category, error) {
	return s.categories.ListCategoriesByUser(ctx, caller.ID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, caller domain.User, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if err := s.validateName(ctx, caller.ID, name, 0); err != nil {
		return domain.Category{}, err
	}

	category, err := s.categories.CreateCategory(ctx, caller.ID, name)
	if errors.Is(err, domain.ErrCategoryNameTaken) {
		return domain.Category{}, domain.NewValidationError("name", apierrors.MsgNameTaken)
	}
	return category, err
}

func (s *CategoryService) GetCategory(ctx context.Context, caller domain.User, id uint64) (domain.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	// Non-owners get a 403, not a 404: resource existence is deliberately
	// not masked.
	if !domain.Owns(caller.ID, category.UserID) {
		return domain.Category{}, domain.ErrForbidden
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, caller domain.User, id uint64, name string) (domain.Category, error) {
	category, err := s.GetCategory(ctx, caller, id)
	if err != nil {
		return domain.Category{}, err
	}

	name = strings.TrimSpace(name)
	// Excluding the category's own row lets a rename to its current name
	// pass the uniqueness check.
	if err := s.validateName(ctx, caller.ID, name, category.ID); err != nil {
		return domain.Category{}, err
	}

	if err := s.categories.RenameCategory(ctx, category.ID, name); err != nil {
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			return domain.Category{}, domain.NewValidationError("name", apierrors.MsgNameTaken)
		}
		return domain.Category{}, err
	}

	return s.categories.GetCategoryByID(ctx, category.ID)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, caller domain.User, id uint64) error {
	if _, err := s.GetCategory(ctx, caller, id); err != nil {
		return err
	}
	return s.categories.DeleteCategoryCascade(ctx, id)
}

func (s *CategoryService) validateName(ctx context.Context, userID uint64, name string, excludeID uint64) error {
	switch {
	case name == "":
		return domain.NewValidationError("name", apierrors.MsgNameRequired)
	case len(name) > maxNameLength:
		return domain.NewValidationError("name", apierrors.MsgNameTooLong)
	}

	exists, err := s.categories.ExistsCategoryByName(ctx, userID, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewValidationError("name", apierrors.MsgNameTaken)
	}
	return nil
}
