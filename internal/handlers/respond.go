package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/takacsd/tms/internal/errors"
	"github.com/takacsd/tms/internal/services"
	"github.com/takacsd/tms/internal/store"
)

// respondServiceError translates service sentinels into the API error
// taxonomy: 403 for denials, 404 for absence, 409 for duplicates, 400
// for validation, 503 for a dead storage medium.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPermissionDenied):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrAttachmentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateProjectCode),
		errors.Is(err, services.ErrDuplicateTaskCode):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrRoleNotAssignable),
		errors.Is(err, services.ErrInvalidVacationRange),
		errors.Is(err, services.ErrInvalidVacationDate),
		errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrProjectCodeRequired),
		errors.Is(err, services.ErrTaskNameRequired),
		errors.Is(err, services.ErrTaskCodeRequired),
		errors.Is(err, services.ErrParentTaskNotFound),
		errors.Is(err, services.ErrParentIsSubtask),
		errors.Is(err, services.ErrParentProjectMismatch),
		errors.Is(err, services.ErrNegativeHours),
		errors.Is(err, services.ErrEmptyFileName):
		apierrors.BadRequest(c, err.Error())
	case store.IsUnavailable(err):
		apierrors.StorageUnavailable(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
