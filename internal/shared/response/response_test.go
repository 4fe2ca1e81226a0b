package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-service/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestError(t *testing.T) {
	c, w := newContext()

	response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found", nil)

	var env struct {
		Ok    bool               `json:"ok"`
		Error response.ErrorBody `json:"error"`
	}
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Employee not found", env.Error.Message)
}

func TestModel(t *testing.T) {
	c, w := newContext()

	response.Model(c, http.StatusCreated, "/employees/7", gin.H{"name": "Bob"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/employees/7", w.Header().Get("Location"))
	assert.JSONEq(t, `{"name":"Bob"}`, w.Body.String())
}

func TestNoContent(t *testing.T) {
	c, w := newContext()

	response.NoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
