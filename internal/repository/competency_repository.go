package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// GormCompetencyRepository is a GORM implementation of CompetencyRepository
type GormCompetencyRepository struct {
	db *gorm.DB
}

// NewCompetencyRepository creates a new CompetencyRepository
func NewCompetencyRepository(db *gorm.DB) CompetencyRepository {
	return &GormCompetencyRepository{db: db}
}

// GetAll returns every competency, unordered
func (r *GormCompetencyRepository) GetAll() ([]models.Competency, error) {
	var competencies []models.Competency
	if err := r.db.Find(&competencies).Error; err != nil {
		return nil, err
	}
	return competencies, nil
}

// FindByID finds a competency by ID, (nil, nil) when absent
func (r *GormCompetencyRepository) FindByID(id string) (*models.Competency, error) {
	var competency models.Competency
	err := r.db.First(&competency, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &competency, nil
}

// Create creates a new competency
func (r *GormCompetencyRepository) Create(competency *models.Competency) error {
	stampNew(&competency.ID, &competency.CreatedAt)
	return r.db.Create(competency).Error
}

// Update replaces the competency record
func (r *GormCompetencyRepository) Update(competency *models.Competency) error {
	return r.db.Save(competency).Error
}

// Delete removes a single competency. Users keep dangling competency
// IDs; this is accepted, not cleaned up.
func (r *GormCompetencyRepository) Delete(id string) error {
	return r.db.Delete(&models.Competency{}, "id = ?", id).Error
}

// Seed bulk-inserts competencies in one transaction
func (r *GormCompetencyRepository) Seed(competencies []models.Competency) error {
	if len(competencies) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&competencies).Error
	})
}

// Count returns the number of competencies
func (r *GormCompetencyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Competency{}).Count(&count).Error
	return count, err
}
