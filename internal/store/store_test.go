package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrateFreshStore(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, Migrate(db))

	version, err = CurrentVersion(db)
	require.NoError(t, err)
	assert.Equal(t, TargetVersion, version)

	for _, model := range []interface{}{
		&models.User{}, &models.Competency{}, &models.Project{},
		&models.Task{}, &models.ProjectTag{}, &models.TaskType{},
		&models.Priority{}, &models.Status{}, &models.Attachment{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestStore(t)

	user := models.User{ID: "u1", Name: "Kiss Katalin", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)

	// Re-running at the target version must be a no-op with no data
	// loss.
	for i := 0; i < 3; i++ {
		require.NoError(t, Migrate(db))
	}

	version, err := CurrentVersion(db)
	require.NoError(t, err)
	assert.Equal(t, TargetVersion, version)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProjectCodeUniqueIndex(t *testing.T) {
	db := openTestStore(t)

	first := models.Project{ID: "p1", Type: models.ProjectTypeDevelopment, Name: "One", Code: "ABC"}
	require.NoError(t, db.Create(&first).Error)

	second := models.Project{ID: "p2", Type: models.ProjectTypeDevelopment, Name: "Two", Code: "ABC"}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestTaskCodeNotGloballyUnique(t *testing.T) {
	db := openTestStore(t)

	// The by-code index on tasks is non-unique: the same code may
	// exist in two different projects.
	t1 := models.Task{ID: "t1", ProjectID: "p1", Name: "A", Code: "T-1"}
	t2 := models.Task{ID: "t2", ProjectID: "p2", Name: "B", Code: "T-1"}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)
}

func TestClearAll(t *testing.T) {
	db := openTestStore(t)

	require.NoError(t, db.Create(&models.User{ID: "u1", Name: "A", Role: models.RoleAdmin}).Error)
	require.NoError(t, db.Create(&models.Project{ID: "p1", Type: models.ProjectTypeCustomer, Name: "P", Code: "P1"}).Error)
	require.NoError(t, db.Create(&models.Attachment{ID: "a1", FileName: "f.txt", Data: []byte("x")}).Error)

	require.NoError(t, ClearAll(db))

	for _, model := range []interface{}{&models.User{}, &models.Project{}, &models.Attachment{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}
}

func TestClosedMediumPropagates(t *testing.T) {
	db := openTestStore(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// One attempt, no retry: the failure surfaces to the caller.
	var users []models.User
	assert.Error(t, db.Find(&users).Error)
}
