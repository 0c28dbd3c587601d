package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/services"
)

// TaskHandler exposes task CRUD over HTTP, including the
// progress-only edit path available to assigned staff.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Get returns one task.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskService.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Subtasks lists the direct children of a task.
func (h *TaskHandler) Subtasks(c *gin.Context) {
	tasks, err := h.taskService.ListSubtasks(c.Param("id"))
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create adds a new task.
func (h *TaskHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.taskService.Create(actor.Role, &task)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update fully edits an existing task.
func (h *TaskHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	task.ID = c.Param("id")

	updated, err := h.taskService.Update(actor.Role, &task)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateProgress edits only status and actual hours. An assigned
// Munkatars may use this without full edit rights.
func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type ProgressRequest struct {
		StatusID    string   `json:"statusId"`
		ActualHours *float64 `json:"actualHours"`
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.taskService.UpdateProgress(actor, c.Param("id"), req.StatusID, req.ActualHours)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a task and its direct subtasks.
func (h *TaskHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.taskService.Delete(actor.Role, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
