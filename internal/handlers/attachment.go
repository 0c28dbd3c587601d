package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/services"
)

// AttachmentHandler is the file I/O boundary: multipart upload in,
// payload streaming out.
type AttachmentHandler struct {
	attachmentService *services.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload stores a multipart file and returns its metadata.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "A file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.BadRequest(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		apierrors.BadRequest(c, "Failed to read uploaded file")
		return
	}

	meta, err := h.attachmentService.Upload(
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meta)
}

// Meta returns attachment metadata without the payload.
func (h *AttachmentHandler) Meta(c *gin.Context) {
	meta, err := h.attachmentService.Meta(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

// Download streams the payload as a file download.
func (h *AttachmentHandler) Download(c *gin.Context) {
	attachment, err := h.attachmentService.Download(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	c.Data(http.StatusOK, attachment.MimeType, attachment.Data)
}

// Delete removes an attachment and its payload.
func (h *AttachmentHandler) Delete(c *gin.Context) {
	if err := h.attachmentService.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted"})
}
