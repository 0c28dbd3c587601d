package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/repository"
)

func newProjectService(t *testing.T) (*ProjectService, repository.ProjectRepository) {
	t.Helper()
	repo := repository.NewProjectRepository(openTestDB(t))
	return NewProjectService(repo), repo
}

func validProject(code string) *models.Project {
	return &models.Project{
		Type: models.ProjectTypeDevelopment,
		Name: "Projekt " + code,
		Code: code,
	}
}

func TestProjectCreateUpperCasesCode(t *testing.T) {
	service, repo := newProjectService(t)

	created, err := service.Create(models.RoleCsoportVezeto, validProject("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ABC", created.Code)

	found, err := repo.FindByCode("ABC")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestProjectCreateRejectsDuplicateCodeCaseInsensitively(t *testing.T) {
	service, _ := newProjectService(t)

	_, err := service.Create(models.RoleAdmin, validProject("ABC"))
	require.NoError(t, err)

	// The lower-case variant normalizes to the same code.
	_, err = service.Create(models.RoleAdmin, validProject("abc"))
	assert.ErrorIs(t, err, ErrDuplicateProjectCode)
}

func TestProjectCreateValidation(t *testing.T) {
	service, _ := newProjectService(t)

	_, err := service.Create(models.RoleMunkatars, validProject("ABC"))
	assert.ErrorIs(t, err, ErrPermissionDenied)

	noName := validProject("ABC")
	noName.Name = ""
	_, err = service.Create(models.RoleAdmin, noName)
	assert.ErrorIs(t, err, ErrProjectNameRequired)

	noCode := validProject("   ")
	_, err = service.Create(models.RoleAdmin, noCode)
	assert.ErrorIs(t, err, ErrProjectCodeRequired)
}

func TestProjectCreateDeduplicatesTeam(t *testing.T) {
	service, _ := newProjectService(t)

	project := validProject("TEAM")
	project.Team = []models.TeamMember{
		{UserID: "u1", RoleInProject: models.ProjectRoleLead},
		{UserID: "u2", RoleInProject: models.ProjectRoleMember},
		{UserID: "u1", RoleInProject: models.ProjectRoleViewer},
	}

	created, err := service.Create(models.RoleAdmin, project)
	require.NoError(t, err)
	require.Len(t, created.Team, 2)
	// First entry wins.
	assert.Equal(t, models.ProjectRoleLead, created.Team[0].RoleInProject)
}

func TestProjectListFiltersByAccess(t *testing.T) {
	service, repo := newProjectService(t)

	open := validProject("OPEN")
	open.Team = []models.TeamMember{{UserID: "u1", RoleInProject: models.ProjectRoleViewer}}
	closed := validProject("CLOSD")
	require.NoError(t, repo.Create(open))
	require.NoError(t, repo.Create(closed))

	viewer := &models.User{ID: "u1", Role: models.RoleMegtekinto}
	visible, err := service.List(viewer)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "OPEN", visible[0].Code)

	boss := &models.User{ID: "u9", Role: models.RoleOsztalyVezeto}
	visible, err = service.List(boss)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestProjectGetEnforcesAccess(t *testing.T) {
	service, repo := newProjectService(t)

	project := validProject("SECR")
	require.NoError(t, repo.Create(project))

	outsider := &models.User{ID: "u1", Role: models.RoleMunkatars}
	_, err := service.Get(outsider, project.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = service.Get(&models.User{ID: "u9", Role: models.RoleAdmin}, project.ID)
	assert.NoError(t, err)

	_, err = service.Get(&models.User{ID: "u9", Role: models.RoleAdmin}, "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectUpdatePreservesTeamWithoutManagePermission(t *testing.T) {
	service, repo := newProjectService(t)

	project := validProject("KEEP")
	project.Team = []models.TeamMember{{UserID: "u1", RoleInProject: models.ProjectRoleLead}}
	require.NoError(t, repo.Create(project))

	edited := *project
	edited.Name = "Átnevezett projekt"
	edited.Team = nil

	// CsoportVezeto manages teams, so the wipe goes through.
	updated, err := service.Update(models.RoleCsoportVezeto, &edited)
	require.NoError(t, err)
	assert.Empty(t, updated.Team)
}

func TestProjectUpdateDuplicateCode(t *testing.T) {
	service, repo := newProjectService(t)

	first := validProject("FIRST")
	second := validProject("SECND")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	second.Code = "first"
	_, err := service.Update(models.RoleAdmin, second)
	assert.ErrorIs(t, err, ErrDuplicateProjectCode)

	// Re-saving under its own code is not a conflict.
	second.Code = "SECND"
	second.Name = "Másik név"
	_, err = service.Update(models.RoleAdmin, second)
	assert.NoError(t, err)
}

func TestProjectDeleteIsAdminOnly(t *testing.T) {
	service, repo := newProjectService(t)

	project := validProject("DEL")
	require.NoError(t, repo.Create(project))

	assert.ErrorIs(t, service.Delete(models.RoleOsztalyVezeto, project.ID), ErrPermissionDenied)
	require.NoError(t, service.Delete(models.RoleAdmin, project.ID))
	assert.ErrorIs(t, service.Delete(models.RoleAdmin, project.ID), ErrProjectNotFound)
}
