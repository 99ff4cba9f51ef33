package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/core/domain"
	"taskforge/pkg/apierrors"
)

// writeServiceError maps a service error onto the wire taxonomy:
// validation 422, authentication 401, ownership 403, missing id 404,
// anything else 500 with details kept to the logs. Non-owners get 403
// rather than 404: the existence leak is a kept compatibility choice.
func writeServiceError(c *gin.Context, lang string, err error, logMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldErrors(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, verr.Fields, lang),
		)
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
		)
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang),
		)
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
		)
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}
