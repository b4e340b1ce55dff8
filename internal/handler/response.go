package handler

import (
	"errors"
	"net/http"

	"qrlink/internal/model"
	"qrlink/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ok writes the standard success envelope
func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// fail writes the standard error envelope
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// failFromError maps service errors onto HTTP statuses
func failFromError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLinkNotFound),
		errors.Is(err, service.ErrAccountNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuotaExceeded),
		errors.Is(err, service.ErrFeatureGated):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		fail(c, http.StatusConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidURL) ||
		errors.Is(err, service.ErrTitleTooLong) ||
		errors.Is(err, service.ErrDescriptionTooLong) ||
		errors.Is(err, service.ErrInvalidEmail) ||
		errors.Is(err, service.ErrWeakPassword) ||
		errors.Is(err, service.ErrPasswordTooLong) ||
		errors.Is(err, model.ErrInvalidSize) ||
		errors.Is(err, model.ErrInvalidErrorCorrection) ||
		errors.Is(err, model.ErrInvalidColor) ||
		errors.Is(err, model.ErrUnknownPlan)
}
