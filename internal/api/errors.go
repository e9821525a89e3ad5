package api

import (
	"errors"
	"net/http"
	"strings"

	"fitdesk/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUpstream     ErrorType = "upstream_error"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError carries the HTTP status a failure maps to. Message is safe to show
// to the caller.
type AppError struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return string(e.Type) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Type) + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message, Code: http.StatusBadRequest}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Type: ErrorTypeUnauthorized, Message: message, Code: http.StatusUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Type: ErrorTypeForbidden, Message: message, Code: http.StatusForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: ErrorTypeNotFound, Message: message, Code: http.StatusNotFound}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: ErrorTypeConflict, Message: message, Code: http.StatusConflict}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeUpstream, Message: message, Code: http.StatusServiceUnavailable, Err: err}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Code: http.StatusInternalServerError, Err: err}
}

// IsType reports whether err is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// RespondError writes err as {"error": ...}. Errors that are not AppErrors
// are logged and answered with a generic 500.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		logger.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	if appErr.Code >= http.StatusInternalServerError {
		logger.Error(appErr.Message,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}
	c.AbortWithStatusJSON(appErr.Code, ErrorResponse{Error: appErr.Message})
}

// RespondBindError answers a failed ShouldBind* call with a 400 whose message
// names the offending fields.
func RespondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ValidationMessage(err)})
}

func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be greater than or equal to " + fe.Param()
	case "lte":
		return field + " must be less than or equal to " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "datetime":
		return field + " must be a date in format " + fe.Param()
	default:
		return field + " is invalid"
	}
}
