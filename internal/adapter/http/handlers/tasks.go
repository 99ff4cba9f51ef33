package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/adapter/http/mapper"
	"taskforge/internal/adapter/http/middleware"
	"taskforge/internal/adapter/http/validation"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
	"taskforge/pkg/translator"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeServiceError(c, lang, err, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgTasksFetched, lang),
		Data:    mapper.ToTaskItems(tasks),
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		writeServiceError(c, lang, err, "failed to build create task input")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.CurrentUser(c), input)
	if err != nil {
		writeServiceError(c, lang, err, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Message: translator.Localize(apierrors.MsgTaskCreated, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		writeServiceError(c, lang, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgTaskFetched, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

// UpdateTask accepts a partial field set: only fields present in the JSON
// body are validated and changed, so the body is decoded twice, once into
// the typed request and once into a raw field map.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	var req dto.UpdateTaskRequest
	if json.Unmarshal(body, &raw) != nil || json.Unmarshal(body, &req) != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		writeServiceError(c, lang, err, "failed to build update task input")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.CurrentUser(c), id, input)
	if err != nil {
		writeServiceError(c, lang, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Message: translator.Localize(apierrors.MsgTaskUpdated, lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := pathID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		writeServiceError(c, lang, err, "failed to delete task")
		return
	}

	c.JSON(http.StatusOK, dto.Response{Message: translator.Localize(apierrors.MsgTaskDeleted, lang)})
}
