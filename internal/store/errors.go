package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStorageUnavailable wraps failures of the persistence medium
// itself (file unopenable, quota, corruption). The store makes exactly
// one attempt per call and propagates the failure unchanged.
var ErrStorageUnavailable = errors.New("storage unavailable")

// IsDuplicateKey reports whether err is a unique-index violation, the
// storage-side guard behind the advisory duplicate pre-checks.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsUnavailable reports whether err means the persistence medium could
// not be reached at all.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
