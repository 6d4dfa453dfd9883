package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/pkg/response"
)

// statusFor maps service sentinel errors onto the HTTP error taxonomy.
func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrLeaveNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrEmailTaken),
		errors.Is(err, application.ErrLeaveOverlap):
		return http.StatusConflict
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrOTPExpired),
		errors.Is(err, application.ErrOTPMismatch),
		errors.Is(err, application.ErrMailSend),
		errors.Is(err, application.ErrLeaveTooOld):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	response.Error[any](c, status, msg, nil)
}
