package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentCreateReturnsMetaOnly(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttachmentRepository(db)

	payload := []byte("hello attachment")
	meta, err := repo.Create("notes.txt", "text/plain", payload)
	require.NoError(t, err)
	require.NotEmpty(t, meta.ID)
	assert.Equal(t, "notes.txt", meta.FileName)
	assert.Equal(t, "text/plain", meta.MimeType)
	assert.EqualValues(t, len(payload), meta.Size)
	assert.Nil(t, meta.Data)
}

func TestAttachmentMetaOmitsPayload(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttachmentRepository(db)

	created, err := repo.Create("report.pdf", "application/pdf", []byte{1, 2, 3})
	require.NoError(t, err)

	meta, err := repo.FindMeta(created.ID)
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Nil(t, meta.Data)
	assert.EqualValues(t, 3, meta.Size)
}

func TestAttachmentDownloadIncludesPayload(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttachmentRepository(db)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	created, err := repo.Create("bin.dat", "application/octet-stream", payload)
	require.NoError(t, err)

	full, err := repo.Download(created.ID)
	require.NoError(t, err)
	require.NotNil(t, full)
	assert.Equal(t, payload, full.Data)
}

func TestAttachmentDeleteRemovesMetaAndPayload(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttachmentRepository(db)

	created, err := repo.Create("gone.txt", "text/plain", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	meta, err := repo.FindMeta(created.ID)
	require.NoError(t, err)
	assert.Nil(t, meta)

	full, err := repo.Download(created.ID)
	require.NoError(t, err)
	assert.Nil(t, full)
}
