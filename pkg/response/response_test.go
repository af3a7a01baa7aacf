package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	return c, w
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unauthenticated", application.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", application.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"validation", application.ErrTicketNotFound, http.StatusUnprocessableEntity, "ticket not found"},
		{"bad request", application.ErrAttachmentsOff, http.StatusBadRequest, "attachments are disabled"},
		{"wrapped", fmt.Errorf("update: %w", application.ErrStatusNotFound), http.StatusUnprocessableEntity, "status not found"},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			assert.Equal(t, []string{tt.message}, decodeErrors(t, w))
		})
	}
}

func TestSuccessEnvelopes(t *testing.T) {
	c, w := newContext()
	Created(c, map[string]int{"id": 4})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":4}}`, w.Body.String())

	c, w = newContext()
	List(c, []int{1, 2}, map[string]int{"total": 2})
	assert.JSONEq(t, `{"data":[1,2],"meta":{"total":2}}`, w.Body.String())

	c, w = newContext()
	Deleted(c)
	assert.JSONEq(t, `{"data":{"deleted":true}}`, w.Body.String())

	c, w = newContext()
	OK(c, nil)
	assert.JSONEq(t, `{"data":null}`, w.Body.String())
}

func TestFail_EmptyMessages(t *testing.T) {
	c, w := newContext()
	Fail(c, http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"errors":[]}`, w.Body.String())
}
