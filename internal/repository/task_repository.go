package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// GetAll returns every task, unordered
func (r *GormTaskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID, (nil, nil) when absent
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByProject lists every task of a project via the by-project index
func (r *GormTaskRepository) FindByProject(projectID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindSubtasks lists the direct children of a task via the by-parent
// index
func (r *GormTaskRepository) FindSubtasks(parentTaskID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("parent_task_id = ?", parentTaskID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a new task. Per-project code uniqueness is the
// caller's pre-check, not enforced here.
func (r *GormTaskRepository) Create(task *models.Task) error {
	stampNew(&task.ID, &task.CreatedAt)
	task.UpdatedAt = task.CreatedAt
	return r.db.Create(task).Error
}

// Update replaces the task record, stamping UpdatedAt server-side
func (r *GormTaskRepository) Update(task *models.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

// Delete removes the task and its direct subtasks (one level only) in
// a single transaction. Siblings and the owning project are untouched.
func (r *GormTaskRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_task_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, "id = ?", id).Error
	})
}

// Seed bulk-inserts tasks in one transaction
func (r *GormTaskRepository) Seed(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
}

// Count returns the number of tasks
func (r *GormTaskRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Count(&count).Error
	return count, err
}
