package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/suriya388/backoffice-api/pkg/apperror"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/bills", nil)
	return c, w
}

func TestErrorHidesInternalCauses(t *testing.T) {
	c, w := testContext(t)

	Error(c, errors.New("dial tcp 10.0.0.5:5432: connect failed (user=postgres password=hunter2)"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Operation failed")
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), "dial tcp")
}

func TestErrorKeepsMappedDetails(t *testing.T) {
	c, w := testContext(t)

	Error(c, apperror.NewValidationError([]apperror.FieldError{
		{Field: "date", Message: "is required"},
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	assert.Contains(t, w.Body.String(), `"date"`)
}

func TestErrorNotFound(t *testing.T) {
	c, w := testContext(t)

	Error(c, apperror.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resource not found")
}
