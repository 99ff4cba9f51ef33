package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

const maxTitleLength = 255

type TaskService struct {
	tasks      ports.TaskRepository
	categories ports.CategoryRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, categories ports.CategoryRepository) *TaskService {
	return &TaskService{tasks: tasks, categories: categories}
}

func (s *TaskService) ListTasks(ctx context.Context, caller domain.User) ([]domain.Task, error) {
	return s.tasks.ListTasksByUser(ctx, caller.ID)
}

func (s *TaskService) CreateTask(ctx context.Context, caller domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	input.Title = strings.TrimSpace(input.Title)

	verr := &domain.ValidationError{}
	if err := s.validateTitle(ctx, verr, caller.ID, input.Title, 0); err != nil {
		return domain.Task{}, err
	}

	// Past due dates are rejected at creation only; updates may keep or set
	// historical dates.
	if input.DueDate != nil && beforeToday(*input.DueDate, time.Now()) {
		verr.Add("due_date", apierrors.MsgDueDatePast)
	}

	if input.CategoryID != nil {
		if err := s.validateCategoryRef(ctx, verr, *input.CategoryID); err != nil {
			return domain.Task{}, err
		}
	}

	if !verr.Empty() {
		return domain.Task{}, verr
	}

	task, err := s.tasks.CreateTask(ctx, caller.ID, input)
	if errors.Is(err, domain.ErrTaskTitleTaken) {
		return domain.Task{}, domain.NewValidationError("title", apierrors.MsgTitleTaken)
	}
	return task, err
}

func (s *TaskService) GetTask(ctx context.Context, caller domain.User, id uint64) (domain.Task, error) {
	task, err := s.tasks.GetTaskByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if !domain.Owns(caller.ID, task.UserID) {
		return domain.Task{}, domain.ErrForbidden
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, caller domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.GetTask(ctx, caller, id)
	if err != nil {
		return domain.Task{}, err
	}

	verr := &domain.ValidationError{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := s.validateTitle(ctx, verr, caller.ID, title, task.ID); err != nil {
			return domain.Task{}, err
		}
		task.Title = title
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			verr.Add("status", apierrors.MsgStatusInvalid)
		} else {
			task.Status = *input.Status
		}
	}

	if input.DescriptionSet {
		task.Description = input.Description
	}

	if input.DueDateSet {
		task.DueDate = input.DueDate
	}

	if input.CategoryIDSet {
		if input.CategoryID != nil {
			if err := s.validateCategoryRef(ctx, verr, *input.CategoryID); err != nil {
				return domain.Task{}, err
			}
		}
		task.CategoryID = input.CategoryID
	}

	if !verr.Empty() {
		return domain.Task{}, verr
	}

	updated, err := s.tasks.UpdateTask(ctx, task)
	if errors.Is(err, domain.ErrTaskTitleTaken) {
		return domain.Task{}, domain.NewValidationError("title", apierrors.MsgTitleTaken)
	}
	return updated, err
}

func (s *TaskService) DeleteTask(ctx context.Context, caller domain.User, id uint64) error {
	if _, err := s.GetTask(ctx, caller, id); err != nil {
		return err
	}
	return s.tasks.DeleteTask(ctx, id)
}

func (s *TaskService) validateTitle(ctx context.Context, verr *domain.ValidationError, userID uint64, title string, excludeID uint64) error {
	switch {
	case title == "":
		verr.Add("title", apierrors.MsgTitleRequired)
		return nil
	case len(title) > maxTitleLength:
		verr.Add("title", apierrors.MsgTitleTooLong)
		return nil
	}

	exists, err := s.tasks.ExistsTaskByTitle(ctx, userID, title, excludeID)
	if err != nil {
		return err
	}
	if exists {
		verr.Add("title", apierrors.MsgTitleTaken)
	}
	return nil
}

// validateCategoryRef checks that the referenced category exists. Ownership
// of the category is not separately enforced here.
func (s *TaskService) validateCategoryRef(ctx context.Context, verr *domain.ValidationError, categoryID uint64) error {
	exists, err := s.categories.ExistsCategoryByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		verr.Add("category_id", apierrors.MsgCategoryInvalid)
	}
	return nil
}

// beforeToday compares calendar dates only, ignoring the time of day and
// the locations the two values carry.
func beforeToday(t, now time.Time) bool {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	date := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return date.Before(today)
}
