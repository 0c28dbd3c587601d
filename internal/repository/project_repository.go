package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// GetAll returns every project, unordered
func (r *GormProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a project by ID, (nil, nil) when absent
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByCode finds a project on the unique by-code index, (nil, nil)
// when absent. Callers use this as the advisory duplicate pre-check
// before Create.
func (r *GormProjectRepository) FindByCode(code string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("code = ?", code).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Create creates a new project. Code uniqueness is not checked here;
// the unique index rejects a duplicate that slipped past the caller's
// pre-check.
func (r *GormProjectRepository) Create(project *models.Project) error {
	stampNew(&project.ID, &project.CreatedAt)
	project.UpdatedAt = project.CreatedAt
	return r.db.Create(project).Error
}

// Update replaces the project record, stamping UpdatedAt server-side
func (r *GormProjectRepository) Update(project *models.Project) error {
	project.UpdatedAt = time.Now()
	return r.db.Save(project).Error
}

// Delete removes the project and every task with its project ID in a
// single transaction. All-or-nothing; partial cascade state is never
// observable.
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// Seed bulk-inserts projects in one transaction
func (r *GormProjectRepository) Seed(projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&projects).Error
	})
}

// Count returns the number of projects
func (r *GormProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
