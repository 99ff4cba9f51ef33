package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/validation"
	"taskforge/internal/core/domain"
	"taskforge/pkg/apierrors"
)

func decodeUpdateBody(t *testing.T, body string) (dto.UpdateTaskRequest, map[string]json.RawMessage) {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	var req dto.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req, raw
}

func TestBuildCreateTaskInput_ParsesDueDate(t *testing.T) {
	dueDate := "2026-09-15"
	input, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:   "Report",
		DueDate: &dueDate,
	})

	require.NoError(t, err)
	require.NotNil(t, input.DueDate)
	require.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *input.DueDate)
}

func TestBuildCreateTaskInput_RejectsMalformedDueDate(t *testing.T) {
	dueDate := "15/09/2026"
	_, err := validation.BuildCreateTaskInput(dto.CreateTaskRequest{
		Title:   "Report",
		DueDate: &dueDate,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, apierrors.MsgDueDateInvalid, verr.Fields["due_date"])
}

func TestBuildUpdateTaskInput_EmptyBodyIsNoOp(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	require.Equal(t, domain.UpdateTaskInput{}, input)
}

func TestBuildUpdateTaskInput_PresentFieldsOnly(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"status":"completed","title":"Final report"}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	require.NotNil(t, input.Title)
	require.Equal(t, "Final report", *input.Title)
	require.NotNil(t, input.Status)
	require.Equal(t, domain.TaskStatusCompleted, *input.Status)
	require.False(t, input.DescriptionSet)
	require.False(t, input.DueDateSet)
	require.False(t, input.CategoryIDSet)
}

func TestBuildUpdateTaskInput_NullClearsNullableFields(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"description":null,"due_date":null,"category_id":null}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	require.True(t, input.DescriptionSet)
	require.Nil(t, input.Description)
	require.True(t, input.DueDateSet)
	require.Nil(t, input.DueDate)
	require.True(t, input.CategoryIDSet)
	require.Nil(t, input.CategoryID)
}

func TestBuildUpdateTaskInput_NullTitleRejected(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"title":null}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, apierrors.MsgTitleRequired, verr.Fields["title"])
}

func TestBuildUpdateTaskInput_NullStatusRejected(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"status":null}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, apierrors.MsgStatusInvalid, verr.Fields["status"])
}

func TestBuildUpdateTaskInput_MalformedDueDate(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"due_date":"next tuesday"}`)
	_, err := validation.BuildUpdateTaskInput(req, raw)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, apierrors.MsgDueDateInvalid, verr.Fields["due_date"])
}

func TestBuildUpdateTaskInput_DueDateValue(t *testing.T) {
	req, raw := decodeUpdateBody(t, `{"due_date":"2026-09-15"}`)
	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	require.True(t, input.DueDateSet)
	require.NotNil(t, input.DueDate)
	require.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *input.DueDate)
}
