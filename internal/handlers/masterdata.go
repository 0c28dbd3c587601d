package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/middleware"
	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/permissions"
	"github.com/takacsd/tms/internal/repository"
)

// MasterDataHandler exposes the shared reference collections
// (competencies, project tags, task types, priorities, statuses).
// Reads are open to every authenticated user; writes are admin only,
// enforced here at the caller via the permission engine.
type MasterDataHandler struct {
	competencies repository.CompetencyRepository
	projectTags  repository.ProjectTagRepository
	taskTypes    repository.TaskTypeRepository
	priorities   repository.PriorityRepository
	statuses     repository.StatusRepository
}

// NewMasterDataHandler creates a new MasterDataHandler
func NewMasterDataHandler(
	competencies repository.CompetencyRepository,
	projectTags repository.ProjectTagRepository,
	taskTypes repository.TaskTypeRepository,
	priorities repository.PriorityRepository,
	statuses repository.StatusRepository,
) *MasterDataHandler {
	return &MasterDataHandler{
		competencies: competencies,
		projectTags:  projectTags,
		taskTypes:    taskTypes,
		priorities:   priorities,
		statuses:     statuses,
	}
}

func requireCompetencyManager(c *gin.Context) bool {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return false
	}
	if !permissions.CanManageCompetencies(actor.Role) {
		apierrors.Forbidden(c, "")
		return false
	}
	return true
}

func requireMasterDataManager(c *gin.Context) bool {
	actor, ok := middleware.ActingUser(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return false
	}
	if !permissions.CanManageMasterData(actor.Role) {
		apierrors.Forbidden(c, "")
		return false
	}
	return true
}

// Competencies

func (h *MasterDataHandler) ListCompetencies(c *gin.Context) {
	competencies, err := h.competencies.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, competencies)
}

func (h *MasterDataHandler) CreateCompetency(c *gin.Context) {
	if !requireCompetencyManager(c) {
		return
	}

	var competency models.Competency
	if err := c.ShouldBindJSON(&competency); err != nil || competency.Name == "" {
		apierrors.BadRequest(c, "Competency name is required")
		return
	}

	if err := h.competencies.Create(&competency); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusCreated, competency)
}

func (h *MasterDataHandler) UpdateCompetency(c *gin.Context) {
	if !requireCompetencyManager(c) {
		return
	}

	var competency models.Competency
	if err := c.ShouldBindJSON(&competency); err != nil || competency.Name == "" {
		apierrors.BadRequest(c, "Competency name is required")
		return
	}
	competency.ID = c.Param("id")

	existing, err := h.competencies.FindByID(competency.ID)
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	if existing == nil {
		apierrors.NotFound(c, "Competency not found")
		return
	}
	competency.CreatedAt = existing.CreatedAt

	if err := h.competencies.Update(&competency); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, competency)
}

// DeleteCompetency removes a competency. Users keep dangling IDs.
func (h *MasterDataHandler) DeleteCompetency(c *gin.Context) {
	if !requireCompetencyManager(c) {
		return
	}

	if err := h.competencies.Delete(c.Param("id")); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Competency deleted"})
}

// Project tags

func (h *MasterDataHandler) ListProjectTags(c *gin.Context) {
	tags, err := h.projectTags.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *MasterDataHandler) CreateProjectTag(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	var tag models.ProjectTag
	if err := c.ShouldBindJSON(&tag); err != nil || tag.Name == "" {
		apierrors.BadRequest(c, "Tag name is required")
		return
	}

	if err := h.projectTags.Create(&tag); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *MasterDataHandler) DeleteProjectTag(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	if err := h.projectTags.Delete(c.Param("id")); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}

// Task types

func (h *MasterDataHandler) ListTaskTypes(c *gin.Context) {
	taskTypes, err := h.taskTypes.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, taskTypes)
}

func (h *MasterDataHandler) CreateTaskType(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	var taskType models.TaskType
	if err := c.ShouldBindJSON(&taskType); err != nil || taskType.Name == "" {
		apierrors.BadRequest(c, "Task type name is required")
		return
	}

	if err := h.taskTypes.Create(&taskType); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusCreated, taskType)
}

func (h *MasterDataHandler) DeleteTaskType(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	if err := h.taskTypes.Delete(c.Param("id")); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task type deleted"})
}

// Priorities

func (h *MasterDataHandler) ListPriorities(c *gin.Context) {
	priorities, err := h.priorities.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, priorities)
}

func (h *MasterDataHandler) CreatePriority(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	var priority models.Priority
	if err := c.ShouldBindJSON(&priority); err != nil || priority.Name == "" {
		apierrors.BadRequest(c, "Priority name is required")
		return
	}

	if err := h.priorities.Create(&priority); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusCreated, priority)
}

func (h *MasterDataHandler) DeletePriority(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	if err := h.priorities.Delete(c.Param("id")); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Priority deleted"})
}

// Statuses

func (h *MasterDataHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statuses.GetAll()
	if err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *MasterDataHandler) CreateStatus(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	var status models.Status
	if err := c.ShouldBindJSON(&status); err != nil || status.Name == "" {
		apierrors.BadRequest(c, "Status name is required")
		return
	}

	if err := h.statuses.Create(&status); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusCreated, status)
}

func (h *MasterDataHandler) DeleteStatus(c *gin.Context) {
	if !requireMasterDataManager(c) {
		return
	}

	if err := h.statuses.Delete(c.Param("id")); err != nil {
		apierrors.StorageUnavailable(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status deleted"})
}
