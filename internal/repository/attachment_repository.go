package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/takacsd/tms/internal/models"
)

// GormAttachmentRepository is a GORM implementation of
// AttachmentRepository. Metadata and payload live in the same row;
// metadata reads project the row without the data column.
type GormAttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

// Create stores metadata and payload atomically and returns metadata
// only. The size is taken from the payload, not the caller.
func (r *GormAttachmentRepository) Create(fileName, mimeType string, data []byte) (*models.Attachment, error) {
	attachment := models.Attachment{
		ID:        uuid.NewString(),
		FileName:  fileName,
		MimeType:  mimeType,
		Size:      int64(len(data)),
		Data:      data,
		CreatedAt: time.Now(),
	}

	if err := r.db.Create(&attachment).Error; err != nil {
		return nil, err
	}

	meta := attachment.Meta()
	return &meta, nil
}

// FindMeta returns attachment metadata without materializing the
// payload, (nil, nil) when absent
func (r *GormAttachmentRepository) FindMeta(id string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.Omit("data").First(&attachment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Download returns the full attachment including the payload,
// (nil, nil) when absent
func (r *GormAttachmentRepository) Download(id string) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.First(&attachment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Delete removes metadata and payload in one operation
func (r *GormAttachmentRepository) Delete(id string) error {
	return r.db.Delete(&models.Attachment{}, "id = ?", id).Error
}
