package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/services"
)

const (
	msgServerError        = "Server error"
	msgInvalidBody        = "Invalid request body"
	msgDuplicateEmail     = "User already exists with this email"
	msgInvalidCredentials = "Invalid email or password"
	msgMissingLogin       = "Email and password are required"
	msgNoToken            = "No token, authorization denied"
	msgInvalidToken       = "Token is not valid"
	msgExpiredToken       = "Token has expired"
	msgUserNotFound       = "User not found"
	msgActivityNotFound   = "Activity not found"
	msgInvalidActivityID  = "Invalid activity id"
)

// writeServiceError maps a service error onto a status code and a client
// message. notFound is the message used for common.ErrorNotFound.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrMissingLoginFields):
		writeError(w, http.StatusBadRequest, msgMissingLogin)
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusBadRequest, msgDuplicateEmail)
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, msgNoToken)
	case errors.Is(err, common.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, msgExpiredToken)
	case errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, notFound)
	default:
		logger.Error(r.Context(), "request failed",
			"request_id", RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeError(w, http.StatusInternalServerError, msgServerError)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")
	if msg == "" {
		return "Validation failed"
	}
	return msg
}
