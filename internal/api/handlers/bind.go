package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/pkg/response"
	"github.com/linskybing/support-tracker/pkg/utils"
)

var fieldLabels = map[string]string{
	"Email":    "email",
	"Password": "password",
	"Title":    "title",
	"Message":  "message",
	"Name":     "name",
}

// bindJSON decodes the request body into dst. An empty body counts as {}.
// Malformed JSON answers 400, failed validation 422.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(dst)
	}
	if err == nil {
		return true
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		response.Fail(c, http.StatusUnprocessableEntity, validationMessages(verr)...)
		return false
	}
	response.Fail(c, http.StatusBadRequest, "invalid JSON body")
	return false
}

func validationMessages(verr validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		field := fe.StructField()
		lbl, ok := fieldLabels[field]
		if !ok {
			lbl = strings.ToLower(field)
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// pathID reads a numeric path parameter, answering 422 when it is not one.
func pathID(c *gin.Context, param string) (uint, bool) {
	id, err := utils.ParseIDParam(c, param)
	if err != nil {
		response.Error(c, application.Validation("invalid id"))
		return 0, false
	}
	return id, true
}
