package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/takacsd/tms/internal/models"
	"github.com/takacsd/tms/internal/repository"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrEmptyFileName      = errors.New("file name is required")
)

// AttachmentService is the upload/download boundary around attachment
// storage. Payloads are immutable; orphaned attachments are a known
// leak, not reclaimed.
type AttachmentService struct {
	attachmentRepo repository.AttachmentRepository
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(attachmentRepo repository.AttachmentRepository) *AttachmentService {
	return &AttachmentService{attachmentRepo: attachmentRepo}
}

// Upload stores a new attachment and returns its metadata.
func (s *AttachmentService) Upload(fileName, mimeType string, data []byte) (*models.Attachment, error) {
	if fileName == "" {
		return nil, ErrEmptyFileName
	}

	meta, err := s.attachmentRepo.Create(fileName, mimeType, data)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	return meta, nil
}

// Meta returns attachment metadata without loading the payload.
func (s *AttachmentService) Meta(id string) (*models.Attachment, error) {
	meta, err := s.attachmentRepo.FindMeta(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	if meta == nil {
		return nil, ErrAttachmentNotFound
	}
	return meta, nil
}

// Download returns the attachment with its payload.
func (s *AttachmentService) Download(id string) (*models.Attachment, error) {
	attachment, err := s.attachmentRepo.Download(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load attachment: %w", err)
	}
	if attachment == nil {
		return nil, ErrAttachmentNotFound
	}
	return attachment, nil
}

// SaveToDir writes the payload under the attachment's file name into
// dir and returns the written path. This is the save-to-disk side
// effect of a download, outside the data model proper.
func (s *AttachmentService) SaveToDir(id, dir string) (string, error) {
	attachment, err := s.Download(id)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(attachment.FileName))
	if err := os.WriteFile(path, attachment.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}
	return path, nil
}

// Delete removes an attachment with its payload. References from
// projects and tasks are not updated.
func (s *AttachmentService) Delete(id string) error {
	existing, err := s.attachmentRepo.FindMeta(id)
	if err != nil {
		return fmt.Errorf("failed to find attachment: %w", err)
	}
	if existing == nil {
		return ErrAttachmentNotFound
	}

	if err := s.attachmentRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}
