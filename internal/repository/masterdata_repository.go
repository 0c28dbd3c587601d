package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// The four master-data repositories share the same simple shape:
// single-record operations, no cascades, no referential checks.
// Priorities and statuses additionally come back sorted by order.

// GormProjectTagRepository is a GORM implementation of ProjectTagRepository
type GormProjectTagRepository struct {
	db *gorm.DB
}

// NewProjectTagRepository creates a new ProjectTagRepository
func NewProjectTagRepository(db *gorm.DB) ProjectTagRepository {
	return &GormProjectTagRepository{db: db}
}

func (r *GormProjectTagRepository) GetAll() ([]models.ProjectTag, error) {
	var tags []models.ProjectTag
	if err := r.db.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *GormProjectTagRepository) FindByID(id string) (*models.ProjectTag, error) {
	var tag models.ProjectTag
	err := r.db.First(&tag, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *GormProjectTagRepository) Create(tag *models.ProjectTag) error {
	stampNew(&tag.ID, &tag.CreatedAt)
	return r.db.Create(tag).Error
}

func (r *GormProjectTagRepository) Update(tag *models.ProjectTag) error {
	return r.db.Save(tag).Error
}

func (r *GormProjectTagRepository) Delete(id string) error {
	return r.db.Delete(&models.ProjectTag{}, "id = ?", id).Error
}

func (r *GormProjectTagRepository) Seed(tags []models.ProjectTag) error {
	if len(tags) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tags).Error
	})
}

func (r *GormProjectTagRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectTag{}).Count(&count).Error
	return count, err
}

// GormTaskTypeRepository is a GORM implementation of TaskTypeRepository
type GormTaskTypeRepository struct {
	db *gorm.DB
}

// NewTaskTypeRepository creates a new TaskTypeRepository
func NewTaskTypeRepository(db *gorm.DB) TaskTypeRepository {
	return &GormTaskTypeRepository{db: db}
}

func (r *GormTaskTypeRepository) GetAll() ([]models.TaskType, error) {
	var taskTypes []models.TaskType
	if err := r.db.Find(&taskTypes).Error; err != nil {
		return nil, err
	}
	return taskTypes, nil
}

func (r *GormTaskTypeRepository) FindByID(id string) (*models.TaskType, error) {
	var taskType models.TaskType
	err := r.db.First(&taskType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &taskType, nil
}

func (r *GormTaskTypeRepository) Create(taskType *models.TaskType) error {
	stampNew(&taskType.ID, &taskType.CreatedAt)
	return r.db.Create(taskType).Error
}

func (r *GormTaskTypeRepository) Update(taskType *models.TaskType) error {
	return r.db.Save(taskType).Error
}

func (r *GormTaskTypeRepository) Delete(id string) error {
	return r.db.Delete(&models.TaskType{}, "id = ?", id).Error
}

func (r *GormTaskTypeRepository) Seed(taskTypes []models.TaskType) error {
	if len(taskTypes) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&taskTypes).Error
	})
}

func (r *GormTaskTypeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TaskType{}).Count(&count).Error
	return count, err
}

// GormPriorityRepository is a GORM implementation of PriorityRepository
type GormPriorityRepository struct {
	db *gorm.DB
}

// NewPriorityRepository creates a new PriorityRepository
func NewPriorityRepository(db *gorm.DB) PriorityRepository {
	return &GormPriorityRepository{db: db}
}

// GetAll returns priorities sorted ascending by order (most urgent
// first)
func (r *GormPriorityRepository) GetAll() ([]models.Priority, error) {
	var priorities []models.Priority
	if err := r.db.Order("sort_order ASC").Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

func (r *GormPriorityRepository) FindByID(id string) (*models.Priority, error) {
	var priority models.Priority
	err := r.db.First(&priority, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &priority, nil
}

func (r *GormPriorityRepository) Create(priority *models.Priority) error {
	stampNew(&priority.ID, &priority.CreatedAt)
	return r.db.Create(priority).Error
}

func (r *GormPriorityRepository) Update(priority *models.Priority) error {
	return r.db.Save(priority).Error
}

func (r *GormPriorityRepository) Delete(id string) error {
	return r.db.Delete(&models.Priority{}, "id = ?", id).Error
}

func (r *GormPriorityRepository) Seed(priorities []models.Priority) error {
	if len(priorities) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&priorities).Error
	})
}

func (r *GormPriorityRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Priority{}).Count(&count).Error
	return count, err
}

// GormStatusRepository is a GORM implementation of StatusRepository
type GormStatusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &GormStatusRepository{db: db}
}

// GetAll returns statuses sorted ascending by order
func (r *GormStatusRepository) GetAll() ([]models.Status, error) {
	var statuses []models.Status
	if err := r.db.Order("sort_order ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormStatusRepository) FindByID(id string) (*models.Status, error) {
	var status models.Status
	err := r.db.First(&status, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *GormStatusRepository) Create(status *models.Status) error {
	stampNew(&status.ID, &status.CreatedAt)
	return r.db.Create(status).Error
}

func (r *GormStatusRepository) Update(status *models.Status) error {
	return r.db.Save(status).Error
}

func (r *GormStatusRepository) Delete(id string) error {
	return r.db.Delete(&models.Status{}, "id = ?", id).Error
}

func (r *GormStatusRepository) Seed(statuses []models.Status) error {
	if len(statuses) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&statuses).Error
	})
}

func (r *GormStatusRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Status{}).Count(&count).Error
	return count, err
}
