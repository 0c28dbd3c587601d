package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/repository"
)

func newUserService(t *testing.T) (*UserService, repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(openTestDB(t))
	return NewUserService(repo), repo
}

func validUser(role models.Role) *models.User {
	return &models.User{
		Name:     "Teszt Elek",
		Role:     role,
		Contacts: models.Contact{Email: "teszt.elek@tms.local"},
	}
}

func TestUserCreateRequiresPrivilege(t *testing.T) {
	service, _ := newUserService(t)

	_, err := service.Create(models.RoleMunkatars, validUser(models.RoleMegtekinto))
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = service.Create(models.RoleMegtekinto, validUser(models.RoleMegtekinto))
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserCreateEnforcesAssignableRoles(t *testing.T) {
	service, _ := newUserService(t)

	// CsoportVezeto may hand out the two lowest roles only.
	_, err := service.Create(models.RoleCsoportVezeto, validUser(models.RoleMunkatars))
	require.NoError(t, err)

	_, err = service.Create(models.RoleCsoportVezeto, validUser(models.RoleCsoportVezeto))
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	_, err = service.Create(models.RoleOsztalyVezeto, validUser(models.RoleAdmin))
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	_, err = service.Create(models.RoleAdmin, validUser(models.RoleAdmin))
	require.NoError(t, err)
}

func TestUserCreateValidation(t *testing.T) {
	service, _ := newUserService(t)

	noName := validUser(models.RoleMunkatars)
	noName.Name = ""
	_, err := service.Create(models.RoleAdmin, noName)
	assert.ErrorIs(t, err, ErrNameRequired)

	noEmail := validUser(models.RoleMunkatars)
	noEmail.Contacts.Email = ""
	_, err = service.Create(models.RoleAdmin, noEmail)
	assert.ErrorIs(t, err, ErrEmailRequired)

	badEmail := validUser(models.RoleMunkatars)
	badEmail.Contacts.Email = "not-an-address"
	_, err = service.Create(models.RoleAdmin, badEmail)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	badRole := validUser("Nagyfonok")
	_, err = service.Create(models.RoleAdmin, badRole)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserCreateValidatesVacations(t *testing.T) {
	service, _ := newUserService(t)

	reversed := validUser(models.RoleMunkatars)
	reversed.WorkSchedule.Vacations = []models.Vacation{
		{ID: "v1", From: "2025-03-10", To: "2025-03-05", Type: models.VacationTypeVacation},
	}
	_, err := service.Create(models.RoleAdmin, reversed)
	assert.ErrorIs(t, err, ErrInvalidVacationRange)

	garbled := validUser(models.RoleMunkatars)
	garbled.WorkSchedule.Vacations = []models.Vacation{
		{ID: "v1", From: "10/03/2025", To: "2025-03-12", Type: models.VacationTypeVacation},
	}
	_, err = service.Create(models.RoleAdmin, garbled)
	assert.ErrorIs(t, err, ErrInvalidVacationDate)

	singleDay := validUser(models.RoleMunkatars)
	singleDay.WorkSchedule.Vacations = []models.Vacation{
		{ID: "v1", From: "2025-03-10", To: "2025-03-10", Type: models.VacationTypeSick},
	}
	_, err = service.Create(models.RoleAdmin, singleDay)
	assert.NoError(t, err)
}

func TestUserUpdateChecksTargetRole(t *testing.T) {
	service, repo := newUserService(t)

	peer := validUser(models.RoleCsoportVezeto)
	require.NoError(t, repo.Create(peer))

	// A peer edit is refused on the stored role.
	peer.Name = "Átnevezve"
	_, err := service.Update(models.RoleCsoportVezeto, peer)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// A strictly higher role succeeds.
	_, err = service.Update(models.RoleOsztalyVezeto, peer)
	require.NoError(t, err)

	found, err := repo.FindByID(peer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Átnevezve", found.Name)
}

func TestUserUpdateRoleChangeNeedsAssignability(t *testing.T) {
	service, repo := newUserService(t)

	target := validUser(models.RoleMunkatars)
	require.NoError(t, repo.Create(target))

	// Promoting to a role the actor cannot hand out is refused.
	target.Role = models.RoleOsztalyVezeto
	_, err := service.Update(models.RoleCsoportVezeto, target)
	assert.ErrorIs(t, err, ErrRoleNotAssignable)

	_, err = service.Update(models.RoleAdmin, target)
	require.NoError(t, err)

	found, err := repo.FindByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOsztalyVezeto, found.Role)
}

func TestUserUpdateMissing(t *testing.T) {
	service, _ := newUserService(t)

	ghost := validUser(models.RoleMunkatars)
	ghost.ID = "missing"
	_, err := service.Update(models.RoleAdmin, ghost)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserDeleteIsAdminOnly(t *testing.T) {
	service, repo := newUserService(t)

	target := validUser(models.RoleMegtekinto)
	require.NoError(t, repo.Create(target))

	assert.ErrorIs(t, service.Delete(models.RoleOsztalyVezeto, target.ID), ErrPermissionDenied)
	require.NoError(t, service.Delete(models.RoleAdmin, target.ID))

	assert.ErrorIs(t, service.Delete(models.RoleAdmin, target.ID), ErrUserNotFound)
}
