package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/services"
)

// ProjectHandler exposes project CRUD over HTTP.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, taskService: taskService}
}

// List returns the projects visible to the acting user.
func (h *ProjectHandler) List(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.List(actor)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns one project if the acting user may view it.
func (h *ProjectHandler) Get(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	project, err := h.projectService.Get(actor, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Tasks lists the tasks of one project.
func (h *ProjectHandler) Tasks(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	// Visibility piggybacks on project access.
	if _, err := h.projectService.Get(actor, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	tasks, err := h.taskService.ListByProject(c.Param("id"))
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create adds a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.projectService.Create(actor.Role, &project)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update edits an existing project.
func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	project.ID = c.Param("id")

	updated, err := h.projectService.Update(actor.Role, &project)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a project and all its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.projectService.Delete(actor.Role, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}
