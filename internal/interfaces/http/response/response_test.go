package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"solene-digital.backend/internal/domain/contract"
	domainerrors "solene-digital.backend/internal/domain/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()

	Success(c, http.StatusOK, gin.H{"ok": true})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestError_AppError(t *testing.T) {
	c, w := newTestContext()

	Error(c, domainerrors.NotFound("missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
	assert.Contains(t, w.Body.String(), "missing")
}

func TestError_WrappedAppError(t *testing.T) {
	c, w := newTestContext()

	Error(c, fmt.Errorf("lookup: %w", domainerrors.BadRequest("nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nope")
}

func TestError_GenericErrorDoesNotLeak(t *testing.T) {
	c, w := newTestContext()

	Error(c, domainerrors.NewStorageError("list services", errors.New("dial tcp 10.0.0.1:5432")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInternalError)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestValidation(t *testing.T) {
	c, w := newTestContext()

	Validation(c, &contract.ValidationError{Message: "name is required", Field: "name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"name is required","field":"name"}`, w.Body.String())

	c, w = newTestContext()
	Validation(c, &contract.ValidationError{Message: "invalid request body"})
	assert.JSONEq(t, `{"message":"invalid request body"}`, w.Body.String())
}
