package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// GetAll returns every user, unordered
func (r *GormUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID, (nil, nil) when absent
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user, generating the ID and timestamps when
// the caller left them empty
func (r *GormUserRepository) Create(user *models.User) error {
	stampNew(&user.ID, &user.CreatedAt)
	user.UpdatedAt = user.CreatedAt
	return r.db.Create(user).Error
}

// Update replaces the user record, stamping UpdatedAt server-side and
// preserving the caller-supplied CreatedAt
func (r *GormUserRepository) Update(user *models.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// Delete removes a single user. No cascade: team memberships and task
// assignee lists keep the dangling ID.
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// Seed bulk-inserts fully-formed user records in one transaction
func (r *GormUserRepository) Seed(users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&users).Error
	})
}

// Count returns the number of users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// stampNew fills in a generated ID and creation time for records the
// caller built without them.
func stampNew(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}
