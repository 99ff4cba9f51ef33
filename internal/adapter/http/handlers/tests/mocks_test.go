package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskforge/internal/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}

func (m *authServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context, caller domain.User) ([]domain.Category, error) {
	args := m.Called(ctx, caller)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, caller domain.User, name string) (domain.Category, error) {
	args := m.Called(ctx, caller, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, caller domain.User, id uint64) (domain.Category, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, caller domain.User, id uint64, name string) (domain.Category, error) {
	args := m.Called(ctx, caller, id, name)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, caller domain.User, id uint64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, caller domain.User) ([]domain.Task, error) {
	args := m.Called(ctx, caller)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, caller domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, caller domain.User, id uint64) (domain.Task, error) {
	args := m.Called(ctx, caller, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, caller domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, caller, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, caller domain.User, id uint64) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}
