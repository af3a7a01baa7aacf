package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
)

// DataResponse is the success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ListResponse is the success envelope of paginated lists.
type ListResponse struct {
	Data any `json:"data"`
	Meta any `json:"meta"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

const internalMessage = "internal server error"

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, DataResponse{Data: data})
}

func OK(c *gin.Context, data any) {
	Success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	Success(c, http.StatusCreated, data)
}

func List(c *gin.Context, data any, meta any) {
	c.JSON(http.StatusOK, ListResponse{Data: data, Meta: meta})
}

func Deleted(c *gin.Context) {
	OK(c, DeletedResponse{Deleted: true})
}

// Fail writes the error envelope and aborts the chain.
func Fail(c *gin.Context, status int, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Errors: messages})
}

// StatusFor maps an application error kind to an HTTP status.
func StatusFor(kind application.ErrorKind) int {
	switch kind {
	case application.KindUnauthenticated:
		return http.StatusUnauthorized
	case application.KindForbidden:
		return http.StatusForbidden
	case application.KindValidation:
		return http.StatusUnprocessableEntity
	case application.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error answers with the envelope for err. Errors that are not application
// errors are logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *application.AppError
	if errors.As(err, &appErr) && appErr.Kind != application.KindInternal {
		Fail(c, StatusFor(appErr.Kind), appErr.Message)
		return
	}
	slog.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	Fail(c, http.StatusInternalServerError, internalMessage)
}
