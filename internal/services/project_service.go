package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/permissions"
	"github.com/takacsd/tms/internal/repository"
	"github.com/takacsd/tms/internal/store"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectNameRequired  = errors.New("project name is required")
	ErrProjectCodeRequired  = errors.New("project code is required")
	ErrDuplicateProjectCode = errors.New("project code already in use")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// List returns the projects visible to the acting user: privileged
// roles see all, others only those whose team lists them.
func (s *ProjectService) List(actingUser *models.User) ([]models.Project, error) {
	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	visible := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if permissions.HasProjectAccess(actingUser.Role, actingUser.ID, p.Team) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// Get returns one project if the acting user may view it.
func (s *ProjectService) Get(actingUser *models.User, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if !permissions.HasProjectAccess(actingUser.Role, actingUser.ID, project.Team) {
		return nil, ErrPermissionDenied
	}
	return project, nil
}

// Create validates and stores a new project. The code is upper-cased
// before the advisory duplicate pre-check; the unique by-code index
// catches any duplicate that slips through the check/write window.
func (s *ProjectService) Create(actingRole models.Role, project *models.Project) (*models.Project, error) {
	if !permissions.CanCreateProject(actingRole) {
		return nil, ErrPermissionDenied
	}
	if err := normalizeProject(project); err != nil {
		return nil, err
	}

	existing, err := s.projectRepo.FindByCode(project.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check project code: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateProjectCode
	}

	if err := s.projectRepo.Create(project); err != nil {
		if store.IsDuplicateKey(err) {
			return nil, ErrDuplicateProjectCode
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Update validates and stores an edited project, preserving CreatedAt.
func (s *ProjectService) Update(actingRole models.Role, project *models.Project) (*models.Project, error) {
	if !permissions.CanEditProject(actingRole) {
		return nil, ErrPermissionDenied
	}

	current, err := s.projectRepo.FindByID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if current == nil {
		return nil, ErrProjectNotFound
	}
	if !permissions.CanManageProjectTeam(actingRole) {
		project.Team = current.Team
	}
	if err := normalizeProject(project); err != nil {
		return nil, err
	}

	if project.Code != current.Code {
		existing, err := s.projectRepo.FindByCode(project.Code)
		if err != nil {
			return nil, fmt.Errorf("failed to check project code: %w", err)
		}
		if existing != nil && existing.ID != project.ID {
			return nil, ErrDuplicateProjectCode
		}
	}

	project.CreatedAt = current.CreatedAt
	if err := s.projectRepo.Update(project); err != nil {
		if store.IsDuplicateKey(err) {
			return nil, ErrDuplicateProjectCode
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes a project and all its tasks.
func (s *ProjectService) Delete(actingRole models.Role, id string) error {
	if !permissions.CanDeleteProject(actingRole) {
		return ErrPermissionDenied
	}

	existing, err := s.projectRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to find project: %w", err)
	}
	if existing == nil {
		return ErrProjectNotFound
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// normalizeProject enforces required fields, upper-cases the code and
// keeps each user at most once in the team (first entry wins).
func normalizeProject(project *models.Project) error {
	if project.Name == "" {
		return ErrProjectNameRequired
	}
	project.Code = strings.ToUpper(strings.TrimSpace(project.Code))
	if project.Code == "" {
		return ErrProjectCodeRequired
	}

	seen := make(map[string]struct{}, len(project.Team))
	team := make([]models.TeamMember, 0, len(project.Team))
	for _, member := range project.Team {
		if _, dup := seen[member.UserID]; dup {
			continue
		}
		seen[member.UserID] = struct{}{}
		team = append(team, member)
	}
	project.Team = team
	return nil
}
