package middleware

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
	"github.com/colegio-app/colegio-backend/internal/pkg/logger"
)

// HandleAPIError translates a service error into the uniform error envelope
func HandleAPIError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	var recordInvalid *apperrors.RecordInvalidError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(notFound.Key(), apperrors.NotFoundDescription(notFound.Entity)))
	case errors.As(err, &recordInvalid):
		c.JSON(http.StatusUnprocessableEntity,
			dto.NewErrorResponse("record_invalid", recordInvalid.Fields))
	case errors.Is(err, apperrors.ErrRequiredSignedIn):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse("forbidden.required_signed_in", apperrors.DescRequiredSignedIn))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		sentry.CaptureException(err)
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse("internal_server_error", "ha ocurrido un error inesperado"))
	}
}
