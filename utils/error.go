package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes shared by every service in the core. Handlers translate
// them to HTTP statuses with HTTPStatus.
const (
	CodeUnauthenticated   = "unauthenticated"
	CodeUnauthorized      = "unauthorized"
	CodeInvalidArgument   = "invalidArgument"
	CodeNotFound          = "notFound"
	CodeInvalidTransition = "invalidTransition"
	CodeConflict          = "conflict"
)

// ServiceError is a typed error carrying a taxonomy code.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewUnauthenticated(msg string) error {
	return &ServiceError{Code: CodeUnauthenticated, Message: msg}
}

func NewUnauthorized(msg string) error {
	return &ServiceError{Code: CodeUnauthorized, Message: msg}
}

func NewInvalidArgument(msg string) error {
	return &ServiceError{Code: CodeInvalidArgument, Message: msg}
}

func NewNotFound(msg string) error {
	return &ServiceError{Code: CodeNotFound, Message: msg}
}

func NewInvalidTransition(msg string) error {
	return &ServiceError{Code: CodeInvalidTransition, Message: msg}
}

func NewConflict(msg string) error {
	return &ServiceError{Code: CodeConflict, Message: msg}
}

// ErrorCode extracts the taxonomy code from err, or "" for untyped errors.
func ErrorCode(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}

// HTTPStatus maps a service error to its HTTP status. Untyped errors
// surface as a generic 500 without leaking internal state.
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeUnauthorized:
		return http.StatusForbidden
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidTransition, CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// ServiceErrorResponse maps a service-layer error onto the wire. Typed
// errors keep their message; anything else is masked.
func ServiceErrorResponse(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		GetLogger().Error("internal error", zap.Error(err))
		c.JSON(status, ErrorResponse{Message: "Internal Server Error"})
		return
	}
	var svcErr *ServiceError
	errors.As(err, &svcErr)
	c.JSON(status, ErrorResponse{Message: svcErr.Message})
}
