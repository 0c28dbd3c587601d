package repository

import (
	"github.com/takacsd/tms/internal/models"
)

// Lookups that miss return (nil, nil): absence is a value, not an
// error. Every other failure propagates unchanged from the store.
//
// None of the repositories perform authorization or uniqueness
// pre-checks; both are the caller's responsibility. The unique index
// on projects.code is the storage-side backstop for the check/write
// race.

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetAll() ([]models.User, error)
	FindByID(id string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	Seed(users []models.User) error
	Count() (int64, error)
}

// CompetencyRepository defines the interface for competency data access
type CompetencyRepository interface {
	GetAll() ([]models.Competency, error)
	FindByID(id string) (*models.Competency, error)
	Create(competency *models.Competency) error
	Update(competency *models.Competency) error
	Delete(id string) error
	Seed(competencies []models.Competency) error
	Count() (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	FindByID(id string) (*models.Project, error)

	// FindByCode looks a project up on the unique by-code index.
	FindByCode(code string) (*models.Project, error)

	Create(project *models.Project) error
	Update(project *models.Project) error

	// Delete removes the project and every task belonging to it in
	// one transaction.
	Delete(id string) error

	Seed(projects []models.Project) error
	Count() (int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	GetAll() ([]models.Task, error)
	FindByID(id string) (*models.Task, error)

	// FindByProject lists the tasks of one project via the by-project
	// index.
	FindByProject(projectID string) ([]models.Task, error)

	// FindSubtasks lists the direct children of a task.
	FindSubtasks(parentTaskID string) ([]models.Task, error)

	Create(task *models.Task) error
	Update(task *models.Task) error

	// Delete removes the task and its direct subtasks (one level) in
	// one transaction.
	Delete(id string) error

	Seed(tasks []models.Task) error
	Count() (int64, error)
}

// ProjectTagRepository defines the interface for project tag data access
type ProjectTagRepository interface {
	GetAll() ([]models.ProjectTag, error)
	FindByID(id string) (*models.ProjectTag, error)
	Create(tag *models.ProjectTag) error
	Update(tag *models.ProjectTag) error
	Delete(id string) error
	Seed(tags []models.ProjectTag) error
	Count() (int64, error)
}

// TaskTypeRepository defines the interface for task type data access
type TaskTypeRepository interface {
	GetAll() ([]models.TaskType, error)
	FindByID(id string) (*models.TaskType, error)
	Create(taskType *models.TaskType) error
	Update(taskType *models.TaskType) error
	Delete(id string) error
	Seed(taskTypes []models.TaskType) error
	Count() (int64, error)
}

// PriorityRepository defines the interface for priority data access.
// GetAll returns priorities sorted ascending by order.
type PriorityRepository interface {
	GetAll() ([]models.Priority, error)
	FindByID(id string) (*models.Priority, error)
	Create(priority *models.Priority) error
	Update(priority *models.Priority) error
	Delete(id string) error
	Seed(priorities []models.Priority) error
	Count() (int64, error)
}

// StatusRepository defines the interface for status data access.
// GetAll returns statuses sorted ascending by order.
type StatusRepository interface {
	GetAll() ([]models.Status, error)
	FindByID(id string) (*models.Status, error)
	Create(status *models.Status) error
	Update(status *models.Status) error
	Delete(id string) error
	Seed(statuses []models.Status) error
	Count() (int64, error)
}

// AttachmentRepository defines the interface for attachment data
// access. Payloads are immutable once written; there is no content
// update, and orphaned attachments are never reclaimed.
type AttachmentRepository interface {
	// Create stores metadata and payload atomically and returns the
	// metadata only.
	Create(fileName, mimeType string, data []byte) (*models.Attachment, error)

	// FindMeta returns metadata without materializing the payload.
	FindMeta(id string) (*models.Attachment, error)

	// Download returns the attachment including its payload.
	Download(id string) (*models.Attachment, error)

	// Delete removes metadata and payload atomically.
	Delete(id string) error
}
