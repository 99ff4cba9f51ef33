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
	listCategoriesByUserQuery = `
SELECT id, user_id, name, created_at, updated_at
FROM categories
WHERE user_id = ?
ORDER BY id;
`

	getCategoryByIDQuery = `
SELECT id, user_id, name, created_at, updated_at
FROM categories
WHERE id = ?;
`

	listTasksForUserCategoriesQuery = `
SELECT
  t.*,
  c.name AS category_name
FROM tasks t
JOIN categories c ON c.id = t.category_id
WHERE t.user_id = ? AND t.category_id IS NOT NULL
ORDER BY t.id;
`

	listTasksByCategoryQuery = `
SELECT
  t.*,
  c.name AS category_name
FROM tasks t
JOIN categories c ON c.id = t.category_id
WHERE t.category_id = ?
ORDER BY t.id;
`

	existsCategoryByIDQuery = `
SELECT EXISTS (SELECT 1 FROM categories WHERE id = ?);
`

	existsCategoryByNameQuery = `
SELECT EXISTS (
  SELECT 1 FROM categories
  WHERE user_id = ? AND name = ? AND id <> ?
);
`

	insertCategoryQuery = `
INSERT INTO categories (user_id, name)
VALUES (?, ?);
`

	renameCategoryQuery = `
UPDATE categories
SET name = ?
WHERE id = ?;
`

	deleteCategoryTasksQuery = `
DELETE FROM tasks
WHERE category_id = ?;
`

	deleteCategoryQuery = `
DELETE FROM categories
WHERE id = ?;
`
)

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID        uint64    `db:"id"`
	UserID    uint64    `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListCategoriesByUser returns the caller's categories with their tasks
// eagerly attached, loaded in two queries and grouped in memory.
func (r *CategoryRepository) ListCategoriesByUser(ctx context.Context, userID uint64) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesByUserQuery, userID); err != nil {
		return nil, err
	}

	var taskRows []taskRow
	if err := r.db.SelectContext(ctx, &taskRows, listTasksForUserCategoriesQuery, userID); err != nil {
		return nil, err
	}

	tasksByCategory := make(map[uint64][]domain.Task, len(rows))
	for _, row := range taskRows {
		task := mapTaskRowToDomainTask(row)
		if task.CategoryID == nil {
			continue
		}
		tasksByCategory[*task.CategoryID] = append(tasksByCategory[*task.CategoryID], task)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		category := mapCategoryRowToDomainCategory(row)
		category.Tasks = tasksByCategory[category.ID]
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id uint64) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, getCategoryByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	var taskRows []taskRow
	if err := r.db.SelectContext(ctx, &taskRows, listTasksByCategoryQuery, id); err != nil {
		return domain.Category{}, err
	}

	category := mapCategoryRowToDomainCategory(row)
	for _, taskRow := range taskRows {
		category.Tasks = append(category.Tasks, mapTaskRowToDomainTask(taskRow))
	}
	return category, nil
}

func (r *CategoryRepository) ExistsCategoryByID(ctx context.Context, id uint64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsCategoryByIDQuery, id); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) ExistsCategoryByName(ctx context.Context, userID uint64, name string, excludeID uint64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsCategoryByNameQuery, userID, name, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx, insertCategoryQuery, userID, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrCategoryNameTaken
		}
		return domain.Category{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	return r.GetCategoryByID(ctx, uint64(id))
}

func (r *CategoryRepository) RenameCategory(ctx context.Context, id uint64, name string) error {
	_, err := r.db.ExecContext(ctx, renameCategoryQuery, name, id)
	if err != nil && isDuplicateEntry(err) {
		return domain.ErrCategoryNameTaken
	}
	return err
}

// DeleteCategoryCascade removes the category and every task referencing it
// as one transaction, so a crash mid-delete cannot strand tasks pointing at
// a missing category.
func (r *CategoryRepository) DeleteCategoryCascade(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deleteCategoryTasksQuery, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, deleteCategoryQuery, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
