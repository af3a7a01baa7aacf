package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindJSON(t *testing.T) {
	t.Run("empty body is an empty object", func(t *testing.T) {
		c, _ := jsonContext("")
		var input ticket.UpdateTicketInput
		require.True(t, bindJSON(c, &input))
		assert.Nil(t, input.StatusID)
		assert.Nil(t, input.Tags)
	})

	t.Run("malformed", func(t *testing.T) {
		c, w := jsonContext(`{"title":`)
		var input ticket.CreateTicketInput
		assert.False(t, bindJSON(c, &input))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["invalid JSON body"]}`, w.Body.String())
	})

	t.Run("wrong type", func(t *testing.T) {
		c, w := jsonContext(`{"tags":"1,2"}`)
		var input ticket.UpdateTicketInput
		assert.False(t, bindJSON(c, &input))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation messages", func(t *testing.T) {
		c, w := jsonContext(`{"password":"123"}`)
		var input user.RegisterInput
		assert.False(t, bindJSON(c, &input))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":["email is required","password must be at least 6 characters"]}`, w.Body.String())
	})

	t.Run("empty body still validates", func(t *testing.T) {
		c, w := jsonContext("")
		var input user.LoginInput
		assert.False(t, bindJSON(c, &input))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors":["email is required","password is required"]}`, w.Body.String())
	})

	t.Run("explicit empty tag list", func(t *testing.T) {
		c, _ := jsonContext(`{"tags":[]}`)
		var input ticket.UpdateTicketInput
		require.True(t, bindJSON(c, &input))
		require.NotNil(t, input.Tags)
		assert.Empty(t, *input.Tags)
	})
}

func TestPathID(t *testing.T) {
	c, w := jsonContext("")
	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, ok := pathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"errors":["invalid id"]}`, w.Body.String())
}
