package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/permissions"
	"github.com/takacsd/tms/internal/repository"
)

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrUserNotFound         = errors.New("user not found")
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoleNotAssignable    = errors.New("acting role may not assign the target role")
	ErrInvalidVacationRange = errors.New("vacation start must not be after its end")
	ErrInvalidVacationDate  = errors.New("vacation dates must be ISO dates")
)

var validate = validator.New()

// vacationDateLayout is the ISO date format used by vacation ranges.
const vacationDateLayout = "2006-01-02"

// UserService handles user business logic. The permission engine is
// consulted here, before any repository write; the repositories
// themselves enforce nothing.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetAll returns every user.
func (s *UserService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Get returns one user or ErrUserNotFound.
func (s *UserService) Get(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create validates and stores a new user on behalf of the acting role.
func (s *UserService) Create(actingRole models.Role, user *models.User) (*models.User, error) {
	if !permissions.CanCreateUser(actingRole) {
		return nil, ErrPermissionDenied
	}
	if !user.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if !permissions.CanCreateRole(actingRole, user.Role) {
		return nil, ErrRoleNotAssignable
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Update validates and stores an edited user. The target's current
// role decides editability, so the stored record is consulted, not the
// incoming payload.
func (s *UserService) Update(actingRole models.Role, user *models.User) (*models.User, error) {
	if !permissions.CanEditUser(actingRole) {
		return nil, ErrPermissionDenied
	}

	existing, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}
	if !permissions.CanEditTargetUser(actingRole, existing.Role) {
		return nil, ErrPermissionDenied
	}
	if user.Role != existing.Role {
		if !user.Role.Valid() {
			return nil, ErrInvalidRole
		}
		if !permissions.CanCreateRole(actingRole, user.Role) {
			return nil, ErrRoleNotAssignable
		}
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}

	user.CreatedAt = existing.CreatedAt
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. No cascade: projects and tasks keep dangling
// references to the deleted ID.
func (s *UserService) Delete(actingRole models.Role, id string) error {
	if !permissions.CanDeleteUser(actingRole) {
		return ErrPermissionDenied
	}

	existing, err := s.userRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if existing == nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func validateUser(user *models.User) error {
	if user.Name == "" {
		return ErrNameRequired
	}
	if user.Contacts.Email == "" {
		return ErrEmailRequired
	}
	if err := validate.Var(user.Contacts.Email, "email"); err != nil {
		return ErrInvalidEmail
	}
	for _, vacation := range user.WorkSchedule.Vacations {
		from, err := time.Parse(vacationDateLayout, vacation.From)
		if err != nil {
			return ErrInvalidVacationDate
		}
		to, err := time.Parse(vacationDateLayout, vacation.To)
		if err != nil {
			return ErrInvalidVacationDate
		}
		if from.After(to) {
			return ErrInvalidVacationRange
		}
	}
	return nil
}
