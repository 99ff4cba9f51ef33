package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskforge/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, name, email, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type tokenRepositoryMock struct {
	mock.Mock
}

func (m *tokenRepositoryMock) StoreToken(ctx context.Context, userID uint64, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *tokenRepositoryMock) DeleteToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *tokenRepositoryMock) GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(domain.User), args.Error(1)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) ListCategoriesByUser(ctx context.Context, userID uint64) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetCategoryByID(ctx context.Context, id uint64) (domain.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) ExistsCategoryByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepositoryMock) ExistsCategoryByName(ctx context.Context, userID uint64, name string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, userID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *categoryRepositoryMock) CreateCategory(ctx context.Context, userID uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) RenameCategory(ctx context.Context, id uint64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *categoryRepositoryMock) DeleteCategoryCascade(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasksByUser(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTaskByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ExistsTaskByTitle(ctx context.Context, userID uint64, title string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, userID, title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
