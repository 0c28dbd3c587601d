package services

import (
	"errors"
	"fmt"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/permissions"
	"github.com/takacsd/tms/internal/repository"
)

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrTaskNameRequired      = errors.New("task name is required")
	ErrTaskCodeRequired      = errors.New("task code is required")
	ErrDuplicateTaskCode     = errors.New("task code already in use within the project")
	ErrParentTaskNotFound    = errors.New("parent task not found")
	ErrParentIsSubtask       = errors.New("a subtask cannot be a parent")
	ErrParentProjectMismatch = errors.New("parent task belongs to a different project")
	ErrNegativeHours         = errors.New("hour values must not be negative")
)

// TaskService handles task business logic: the two-level hierarchy
// guard, the project-scoped code pre-check and the progress-only edit
// path all live here, in front of the repository.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo}
}

// Get returns one task or ErrTaskNotFound.
func (s *TaskService) Get(id string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListByProject returns every task of a project.
func (s *TaskService) ListByProject(projectID string) ([]models.Task, error) {
	return s.taskRepo.FindByProject(projectID)
}

// ListSubtasks returns the direct children of a task.
func (s *TaskService) ListSubtasks(parentTaskID string) ([]models.Task, error) {
	return s.taskRepo.FindSubtasks(parentTaskID)
}

// Create validates and stores a new task.
func (s *TaskService) Create(actingRole models.Role, task *models.Task) (*models.Task, error) {
	if !permissions.CanCreateTask(actingRole) {
		return nil, ErrPermissionDenied
	}

	project, err := s.projectRepo.FindByID(task.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if err := s.validateTask(task); err != nil {
		return nil, err
	}
	if err := s.checkDuplicateCode(task); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update validates and stores a fully edited task. The owning project
// is immutable: the stored ProjectID always wins.
func (s *TaskService) Update(actingRole models.Role, task *models.Task) (*models.Task, error) {
	if !permissions.CanEditTask(actingRole) {
		return nil, ErrPermissionDenied
	}

	current, err := s.taskRepo.FindByID(task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if current == nil {
		return nil, ErrTaskNotFound
	}

	task.ProjectID = current.ProjectID
	task.CreatedAt = current.CreatedAt
	if err := s.validateTask(task); err != nil {
		return nil, err
	}
	if task.Code != current.Code {
		if err := s.checkDuplicateCode(task); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// UpdateProgress edits only the progress fields (status, actual
// hours). Full editors always may; a Munkatars only on tasks assigned
// to them.
func (s *TaskService) UpdateProgress(actingUser *models.User, taskID, statusID string, actualHours *float64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if !permissions.CanEditTaskProgress(actingUser.Role, task.AssigneeUserIDs, actingUser.ID) {
		return nil, ErrPermissionDenied
	}
	if actualHours != nil && *actualHours < 0 {
		return nil, ErrNegativeHours
	}

	if statusID != "" {
		task.StatusID = statusID
	}
	if actualHours != nil {
		task.ActualHours = actualHours
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task progress: %w", err)
	}
	return task, nil
}

// Delete removes a task and its direct subtasks.
func (s *TaskService) Delete(actingRole models.Role, id string) error {
	if !permissions.CanDeleteTask(actingRole) {
		return ErrPermissionDenied
	}

	existing, err := s.taskRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}
	if existing == nil {
		return ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) validateTask(task *models.Task) error {
	if task.Name == "" {
		return ErrTaskNameRequired
	}
	if task.Code == "" {
		return ErrTaskCodeRequired
	}
	if task.EstimatedHours != nil && *task.EstimatedHours < 0 {
		return ErrNegativeHours
	}
	if task.ActualHours != nil && *task.ActualHours < 0 {
		return ErrNegativeHours
	}

	if task.ParentTaskID != "" {
		parent, err := s.taskRepo.FindByID(task.ParentTaskID)
		if err != nil {
			return fmt.Errorf("failed to find parent task: %w", err)
		}
		if parent == nil {
			return ErrParentTaskNotFound
		}
		// Two levels only: a task that itself has a parent cannot
		// take children.
		if parent.ParentTaskID != "" {
			return ErrParentIsSubtask
		}
		if parent.ProjectID != task.ProjectID {
			return ErrParentProjectMismatch
		}
	}
	return nil
}

// checkDuplicateCode scans the owning project for another task using
// the same code. Advisory only; there is no composite unique index.
func (s *TaskService) checkDuplicateCode(task *models.Task) error {
	siblings, err := s.taskRepo.FindByProject(task.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to check task code: %w", err)
	}
	for _, sibling := range siblings {
		if sibling.ID != task.ID && sibling.Code == task.Code {
			return ErrDuplicateTaskCode
		}
	}
	return nil
}
