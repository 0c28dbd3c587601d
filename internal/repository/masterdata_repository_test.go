package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takacsd/tms/internal/models"
)

func TestPrioritiesSortedByOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewPriorityRepository(db)

	require.NoError(t, repo.Seed([]models.Priority{
		{ID: "p3", Name: "Low", Order: 3},
		{ID: "p1", Name: "Critical", Order: 1},
		{ID: "p2", Name: "Medium", Order: 2},
	}))

	priorities, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, priorities, 3)
	assert.Equal(t, []string{"Critical", "Medium", "Low"}, []string{
		priorities[0].Name, priorities[1].Name, priorities[2].Name,
	})
}

func TestStatusesSortedByOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewStatusRepository(db)

	require.NoError(t, repo.Seed([]models.Status{
		{ID: "s2", Name: "Done", Order: 2, IsFinal: true},
		{ID: "s1", Name: "New", Order: 1},
	}))

	statuses, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "New", statuses[0].Name)
	assert.True(t, statuses[1].IsFinal)
}

func TestCompetencyDeleteLeavesUserReferences(t *testing.T) {
	db := openTestDB(t)
	competencyRepo := NewCompetencyRepository(db)
	userRepo := NewUserRepository(db)

	competency := &models.Competency{Name: "Go"}
	require.NoError(t, competencyRepo.Create(competency))

	user := &models.User{
		Name:          "Tóth Péter",
		Role:          models.RoleMunkatars,
		Contacts:      models.Contact{Email: "toth.peter@tms.local"},
		CompetencyIDs: []string{competency.ID},
	}
	require.NoError(t, userRepo.Create(user))

	require.NoError(t, competencyRepo.Delete(competency.ID))

	// The dangling reference stays: deletion never cleans up users.
	found, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{competency.ID}, found.CompetencyIDs)
}
