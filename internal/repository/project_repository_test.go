package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/store"
)

func TestProjectRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	project := &models.Project{
		Type: models.ProjectTypeDevelopment,
		Name: "Portal",
		Code: "PORTAL",
		Team: []models.TeamMember{
			{UserID: "u1", RoleInProject: models.ProjectRoleLead},
		},
		TagIDs: []string{"tag1"},
	}
	require.NoError(t, repo.Create(project))
	require.NotEmpty(t, project.ID)

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, project.Name, found.Name)
	assert.Equal(t, project.Code, found.Code)
	assert.Equal(t, project.Team, found.Team)
	assert.Equal(t, project.TagIDs, found.TagIDs)
}

func TestProjectFindByIDAbsent(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	found, err := repo.FindByID("missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectFindByCode(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(&models.Project{
		Type: models.ProjectTypeCustomer, Name: "X", Code: "XYZ",
	}))

	found, err := repo.FindByCode("XYZ")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "XYZ", found.Code)

	absent, err := repo.FindByCode("NOPE")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestProjectDuplicateCodeRejectedByIndex(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(&models.Project{
		Type: models.ProjectTypeDevelopment, Name: "One", Code: "ABC",
	}))

	err := repo.Create(&models.Project{
		Type: models.ProjectTypeDevelopment, Name: "Two", Code: "ABC",
	})
	require.Error(t, err)
	assert.True(t, store.IsDuplicateKey(err))
}

func TestProjectUpdateStampsUpdatedAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	project := &models.Project{Type: models.ProjectTypeDevelopment, Name: "One", Code: "ONE"}
	require.NoError(t, repo.Create(project))

	createdAt := project.CreatedAt
	before := project.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	project.Name = "One renamed"
	// A caller-supplied UpdatedAt must be overwritten server-side.
	project.UpdatedAt = time.Time{}
	require.NoError(t, repo.Update(project))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "One renamed", found.Name)
	assert.True(t, !found.UpdatedAt.Before(before))
	assert.WithinDuration(t, createdAt, found.CreatedAt, time.Second)
}

func TestProjectDeleteCascadesTasks(t *testing.T) {
	db := openTestDB(t)
	projectRepo := NewProjectRepository(db)
	taskRepo := NewTaskRepository(db)

	doomed := &models.Project{Type: models.ProjectTypeDevelopment, Name: "Doomed", Code: "DOOM"}
	survivor := &models.Project{Type: models.ProjectTypeDevelopment, Name: "Survivor", Code: "SURV"}
	require.NoError(t, projectRepo.Create(doomed))
	require.NoError(t, projectRepo.Create(survivor))

	for i, projectID := range []string{doomed.ID, doomed.ID, survivor.ID} {
		require.NoError(t, taskRepo.Create(&models.Task{
			ProjectID: projectID,
			Name:      "Task",
			Code:      "T-" + string(rune('1'+i)),
		}))
	}

	require.NoError(t, projectRepo.Delete(doomed.ID))

	gone, err := projectRepo.FindByID(doomed.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	doomedTasks, err := taskRepo.FindByProject(doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, doomedTasks)

	survivorTasks, err := taskRepo.FindByProject(survivor.ID)
	require.NoError(t, err)
	assert.Len(t, survivorTasks, 1)
}

func TestProjectSeedBulkInsert(t *testing.T) {
	db := openTestDB(t)
	repo := NewProjectRepository(db)

	projects := []models.Project{
		{ID: "p1", Type: models.ProjectTypeDevelopment, Name: "A", Code: "AAA"},
		{ID: "p2", Type: models.ProjectTypeCustomer, Name: "B", Code: "BBB"},
	}
	require.NoError(t, repo.Seed(projects))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
