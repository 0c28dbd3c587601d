package store

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/takacsd/tms/internal/config"
	"github.com/takacsd/tms/internal/models"
)

var (
	db       *gorm.DB
	openOnce sync.Once
	openErr  error
)

// Open opens (creating if absent) the local store and brings its
// schema to the target version. The handle is a process-wide
// singleton: the open-and-migrate sequence runs exactly once behind
// openOnce, and every caller, including concurrent first callers,
// receives the same handle.
func Open(cfg *config.Config) (*gorm.DB, error) {
	openOnce.Do(func() {
		handle, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			openErr = fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
			return
		}

		if err := Migrate(handle); err != nil {
			openErr = err
			return
		}

		db = handle
		logrus.WithField("path", cfg.DBPath).Info("store opened")
	})

	return db, openErr
}

// Get returns the live store handle.
func Get() *gorm.DB {
	return db
}

// Set swaps the store handle (used for testing).
func Set(handle *gorm.DB) {
	db = handle
}

// ClearAll erases every collection. Demo reset only; never called by
// interactive edit flows.
func ClearAll(handle *gorm.DB) error {
	return handle.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.User{},
			&models.Competency{},
			&models.Project{},
			&models.Task{},
			&models.ProjectTag{},
			&models.TaskType{},
			&models.Priority{},
			&models.Status{},
			&models.Attachment{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear collection: %w", err)
			}
		}
		return nil
	})
}
