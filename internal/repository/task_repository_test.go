package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takacsd/tms/internal/models"
)

func TestTaskFindByProjectAndParent(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)

	parent := &models.Task{ProjectID: "p1", Name: "Parent", Code: "T-1"}
	require.NoError(t, repo.Create(parent))

	sub := &models.Task{ProjectID: "p1", ParentTaskID: parent.ID, Name: "Sub", Code: "T-2"}
	other := &models.Task{ProjectID: "p2", Name: "Other", Code: "T-1"}
	require.NoError(t, repo.Create(sub))
	require.NoError(t, repo.Create(other))

	byProject, err := repo.FindByProject("p1")
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	subtasks, err := repo.FindSubtasks(parent.ID)
	require.NoError(t, err)
	require.Len(t, subtasks, 1)
	assert.Equal(t, sub.ID, subtasks[0].ID)
}

func TestTaskDeleteCascadesOneLevel(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)

	parent := &models.Task{ProjectID: "p1", Name: "Parent", Code: "T-1"}
	require.NoError(t, repo.Create(parent))

	sub1 := &models.Task{ProjectID: "p1", ParentTaskID: parent.ID, Name: "Sub 1", Code: "T-2"}
	sub2 := &models.Task{ProjectID: "p1", ParentTaskID: parent.ID, Name: "Sub 2", Code: "T-3"}
	sibling := &models.Task{ProjectID: "p1", Name: "Sibling", Code: "T-4"}
	require.NoError(t, repo.Create(sub1))
	require.NoError(t, repo.Create(sub2))
	require.NoError(t, repo.Create(sibling))

	require.NoError(t, repo.Delete(parent.ID))

	for _, id := range []string{parent.ID, sub1.ID, sub2.ID} {
		found, err := repo.FindByID(id)
		require.NoError(t, err)
		assert.Nil(t, found)
	}

	kept, err := repo.FindByID(sibling.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestTaskRoundTripPreservesLooseReferences(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)

	hours := 8.5
	task := &models.Task{
		ProjectID:       "p1",
		Name:            "Refs",
		Code:            "T-9",
		AssigneeUserIDs: []string{"u1", "u2"},
		AttachmentIDs:   []string{"att1"},
		EstimatedHours:  &hours,
	}
	require.NoError(t, repo.Create(task))

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"u1", "u2"}, found.AssigneeUserIDs)
	assert.Equal(t, []string{"att1"}, found.AttachmentIDs)
	require.NotNil(t, found.EstimatedHours)
	assert.Equal(t, 8.5, *found.EstimatedHours)
}
