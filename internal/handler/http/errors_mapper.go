package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-accounts/internal/app"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

var kindStatusMap = map[service.ErrorKind]int{
	service.KindValidation:    http.StatusBadRequest,
	service.KindConflict:      http.StatusConflict,
	service.KindAuth:          http.StatusUnauthorized,
	service.KindNotFound:      http.StatusNotFound,
	service.KindConfiguration: http.StatusInternalServerError,
	service.KindInternal:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if status, ok := kindStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err as a JSON error body. Details of internal
// errors go to the log only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	var (
		validationErr *service.ValidationError
		conflictErr   *service.ConflictError
		body          any
	)
	switch {
	case errors.As(err, &validationErr):
		body = models.ValidationErrorResponse{Errors: validationErr.Fields}
	case errors.As(err, &conflictErr):
		body = models.ErrorResponse{Error: conflictErr.Error(), Field: conflictErr.Field}
	case status == http.StatusUnauthorized:
		body = models.ErrorResponse{Error: app.MsgInvalidCredentials}
	case status == http.StatusNotFound:
		body = models.ErrorResponse{Error: app.MsgUserNotFound}
	default:
		logger.FromRequest(r).Err(err).Msg("unexpected error occurred")
		body = models.ErrorResponse{Error: app.MsgInternalServerError}
	}

	utils.WriteJSON(w, body, status)
}

func writeErrorMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
