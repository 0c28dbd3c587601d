package store

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// TargetVersion is the schema version the code expects. Migrations are
// additive only: a later version may add collections or indexes but
// never drops or renames earlier ones.
const TargetVersion = 2

// SchemaMigration is the single row tracking the store version.
type SchemaMigration struct {
	ID      int `gorm:"primaryKey"`
	Version int
}

type migration struct {
	version int
	apply   func(tx *gorm.DB) error
}

var migrations = []migration{
	{
		version: 1,
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&models.User{},
				&models.Competency{},
			)
		},
	},
	{
		version: 2,
		apply: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&models.Project{},
				&models.Task{},
				&models.ProjectTag{},
				&models.TaskType{},
				&models.Priority{},
				&models.Status{},
				&models.Attachment{},
			)
		},
	},
}

// Migrate brings the store schema to TargetVersion. Each pending step
// runs inside one transaction together with the version bump, so an
// interrupted migration leaves the store at the prior consistent
// version. Running at the target version is a no-op, which makes
// repeated opens idempotent.
func Migrate(handle *gorm.DB) error {
	if err := handle.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema version table: %w", err)
	}

	current, err := currentVersion(handle)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if m.version > TargetVersion {
			break
		}

		err := handle.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Save(&SchemaMigration{ID: 1, Version: m.version}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to migrate store to version %d: %w", m.version, err)
		}

		logrus.WithField("version", m.version).Info("store schema migrated")
	}

	return nil
}

// CurrentVersion returns the persisted schema version, 0 for a fresh
// store.
func CurrentVersion(handle *gorm.DB) (int, error) {
	return currentVersion(handle)
}

func currentVersion(handle *gorm.DB) (int, error) {
	var row SchemaMigration
	err := handle.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return row.Version, nil
}
