// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-username-changer/internal/app"
	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/models"
)

// Machine-readable failure kinds sent in ErrorResponse.Error.
const (
	kindMissingField    = "missing_field"
	kindNotFound        = "not_found"
	kindNoOpRename      = "no_op_rename"
	kindConflict        = "conflict"
	kindElevatedContext = "requires_elevated_context"
	kindForbidden       = "forbidden"
	kindPersistence     = "persistence_error"
	kindUnauthorized    = "unauthorized"
	kindBadRequest      = "bad_request"
	kindPartialSuccess  = "partial_success"
)

const (
	persistenceMessage   = app.MsgDatabaseError
	partialMessage       = app.MsgAttributionNotMoved
	unauthorizedMessage  = app.MsgAuthenticationRequired
	notFoundMessage      = app.MsgNotFound
	userNotFoundMessage  = app.MsgUserNotFound
	elevatedMessage      = app.MsgRequiresNetworkDashboard
	forbiddenMessage     = app.MsgNoPermission
	missingFieldsMessage = app.MsgMissingFields
)

var errorStatusMap = map[error]int{
	service.ErrMissingField:            http.StatusBadRequest,
	service.ErrNoOpRename:              http.StatusBadRequest,
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrConflict:                http.StatusConflict,
	service.ErrRequiresElevatedContext: http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrPersistence:             http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoActingUser:               http.StatusUnauthorized,
	ErrInvalidUserID:              http.StatusBadRequest,
	ErrInvalidPayload:             http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse renders err for end users. Storage details are never
// included.
func errorResponse(err error) models.ErrorResponse {
	var rerr *service.RenameError
	errors.As(err, &rerr)
	if rerr == nil {
		rerr = &service.RenameError{}
	}

	switch {
	case errors.Is(err, service.ErrMissingField):
		return models.ErrorResponse{Error: kindMissingField, Message: missingFieldsMessage}
	case errors.Is(err, service.ErrNotFound):
		if rerr.CurrentLogin == "" {
			return models.ErrorResponse{Error: kindNotFound, Message: userNotFoundMessage}
		}
		return models.ErrorResponse{
			Error:   kindNotFound,
			Message: fmt.Sprintf(app.MsgUsernameNotFound, rerr.CurrentLogin),
		}
	case errors.Is(err, service.ErrNoOpRename):
		return models.ErrorResponse{
			Error:   kindNoOpRename,
			Message: fmt.Sprintf(app.MsgNoOpRename, rerr.DesiredLogin),
		}
	case errors.Is(err, service.ErrConflict):
		return models.ErrorResponse{
			Error: kindConflict,
			Message: fmt.Sprintf(app.MsgLoginAlreadyExists,
				rerr.CurrentLogin, rerr.DesiredLogin, rerr.DesiredLogin),
		}
	case errors.Is(err, service.ErrRequiresElevatedContext):
		return models.ErrorResponse{Error: kindElevatedContext, Message: elevatedMessage}
	case errors.Is(err, service.ErrForbidden):
		return models.ErrorResponse{Error: kindForbidden, Message: forbiddenMessage}
	case errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidPayload):
		return models.ErrorResponse{Error: kindBadRequest, Message: err.Error()}
	case statusFromError(err) == http.StatusUnauthorized:
		return models.ErrorResponse{Error: kindUnauthorized, Message: unauthorizedMessage}
	default:
		return models.ErrorResponse{Error: kindPersistence, Message: persistenceMessage}
	}
}

func successMessage(result models.RenameResult) string {
	message := fmt.Sprintf(app.MsgRenameSucceeded, result.PreviousLogin, result.User.Login)
	if result.Self {
		message += app.MsgLogInAgain
	}
	return message
}
