package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"task-manager-api/internal/application"
	"task-manager-api/pkg/response"
	"task-manager-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// Create handles POST /tasks/?user_id={id}. The owning user comes from the
// query string, matching the original surface.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid due date", nil)
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("create task failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusCreated, toTaskResponse(t), "task created")
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "task_id")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}

	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("task_id", id).Error("get task failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, toTaskResponse(t), "task")
}

// ListForUser handles GET /users/{user_id}/tasks. A user with zero tasks gets
// an empty list, not a 404.
func (h *TaskHandler) ListForUser(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}

	tasks, err := h.Svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("user_id", userID).Error("list tasks failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, toTaskResponses(tasks), "tasks")
}

// Update handles PUT /tasks/{task_id} as a full replace of the mutable
// fields; omitted optional fields take their defaults again.
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "task_id")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in, err := req.toInput()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid due date", nil)
		return
	}

	t, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("task_id", id).Error("update task failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, toTaskResponse(t), "task updated")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "task_id")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid task id", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error[any](c, http.StatusNotFound, "task not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("task_id", id).Error("delete task failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
