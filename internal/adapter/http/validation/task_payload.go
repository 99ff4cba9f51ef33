package validation

import (
	"bytes"
	"encoding/json"
	"time"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
	"taskforge/pkg/apierrors"
)

const dueDateLayout = "2006-01-02"

// BuildCreateTaskInput converts the request body into a domain input.
// Shape errors (an unparsable date) surface as field-level validation
// errors; required/uniqueness/referential rules belong to the service.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, domain.NewValidationError("due_date", apierrors.MsgDueDateInvalid)
		}
		input.DueDate = &dueDate
	}

	return input, nil
}

// BuildUpdateTaskInput converts a partial update body. The raw message map
// distinguishes absent fields from fields explicitly set to null: nullable
// fields (description, due_date, category_id) are cleared by a JSON null,
// while title and status reject null outright.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	verr := &domain.ValidationError{}
	input := domain.UpdateTaskInput{}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			verr.Add("title", apierrors.MsgTitleRequired)
		} else {
			input.Title = req.Title
		}
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			verr.Add("status", apierrors.MsgStatusInvalid)
		} else {
			status := domain.TaskStatus(*req.Status)
			input.Status = &status
		}
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		input.Description = req.Description
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				verr.Add("due_date", apierrors.MsgDueDateInvalid)
			} else {
				dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
				if err != nil {
					verr.Add("due_date", apierrors.MsgDueDateInvalid)
				} else {
					input.DueDate = &dueDate
				}
			}
		}
	}

	if hasJSONField(raw, "category_id") {
		input.CategoryIDSet = true
		input.CategoryID = req.CategoryID
	}

	if !verr.Empty() {
		return domain.UpdateTaskInput{}, verr
	}
	return input, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
